package doublylist

import "fmt"

func ExampleList_Backward() {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	for v := range l.Backward() {
		fmt.Println(v)
	}
	// Output:
	// 3
	// 2
	// 1
}

func ExampleList_String() {
	l := From("a", "b", "c")
	fmt.Println(l)
	// Output:
	// [a b c]
}
