package trie

import "fmt"

func Example() {
	t := NewString[int]()
	t.Set("cat", 0)
	t.Set("cats", 1)
	t.Set("catacomb", 2)
	t.Set("apple", 3)

	for prefix, value := range t.IterPrefixes("catacombs") {
		fmt.Println(prefix, value)
	}

	keys, _ := t.FindPrefix("app")
	fmt.Println(keys)

	// Output:
	// cat 0
	// catacomb 2
	// [apple]
}

func Example_mapContract() {
	t := NewString[int]()
	t.Set("yolo", 4)
	v, _ := t.Get("yolo")
	fmt.Println(v, t.Contains("yolo"), t.Len())

	t.Delete("yolo")
	_, err := t.Get("yolo")
	fmt.Println(err, t.Len())

	// Output:
	// 4 true 1
	// key not found 0
}

func Example_wordCount() {
	t := FromText("cat cats catacomb apple cats")
	for word, count := range t.Items() {
		fmt.Println(word, count)
	}

	// Output:
	// cat 1
	// cats 2
	// catacomb 1
	// apple 1
}

func ExampleEditor_FindWithinDistance() {
	t := NewString[int]()
	t.Set("apple", 1)

	matches, _ := NewEditor().FindWithinDistance(t, "aple", 1)
	for word := range matches {
		fmt.Println(word)
	}

	// Output:
	// apple
}
