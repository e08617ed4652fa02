package naru_test

import (
	"errors"
	"fmt"

	"github.com/Gobd/naru"
)

func ExampleAddPrefix() {
	m, err := naru.AddPrefix(map[string]int{"a": 1, "b": 2}, "x", "_")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	// Output: map[x_a:1 x_b:2]
}

func ExampleSnakify() {
	s, _ := naru.Snakify("HTTPServerError")
	fmt.Println(s)
	// Output: http_server_error
}

func ExampleCapitalify() {
	s, _ := naru.Capitalify([]string{"user_id", "created_at"})
	fmt.Println(s)
	// Output: [UserId CreatedAt]
}

func ExampleDropDunders() {
	m, _ := naru.DropDunders(map[string]int{"__init__": 1, "value": 2})
	fmt.Println(m)
	// Output: map[value:2]
}

func ExampleDropDuplicates() {
	s, _ := naru.DropDuplicates([]int{1, 2, 2, 3, 1})
	fmt.Println(s)
	// Output: [1 2 3]
}

func ExampleCleaveSlice() {
	a, b, _ := naru.CleaveSlice([]int{1, 2, 3, 4}, 2)
	fmt.Println(a, b)
	// Output: [1 2] [3 4]
}

func ExampleCleaveString() {
	a, b, _ := naru.CleaveString("module_name_test", "")
	fmt.Println(a, b)
	a, b, _ = naru.CleaveString("module_name_test", "", naru.WithReturnLast(false))
	fmt.Println(a, b)
	// Output:
	// module_name test
	// module name_test
}

func ExampleDispatch() {
	out, err := naru.Dispatch(naru.OpAddSuffix, []string{"a", "b"}, "id", "_")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)

	_, err = naru.Dispatch(naru.OpAddSuffix, 42, "id")
	fmt.Println(errors.Is(err, naru.ErrUnsupportedCategory))
	// Output:
	// [a_id b_id]
	// true
}

func ExampleWindowify() {
	w, _ := naru.Windowify([]int{1, 2, 3, 4}, 3, 0, 2)
	fmt.Println(w)
	// Output: [[1 2 3] [3 4 0]]
}

func ExampleAddSlots() {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	s, _ := naru.AddSlots(point{X: 1, Y: 2})
	fmt.Println(s.Names(), s.Map())
	// Output: [x y] map[x:1 y:2]
}
