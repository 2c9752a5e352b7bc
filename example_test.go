package ignorefile_test

import (
	"fmt"

	"github.com/Aman-CERP/ignorefile"
)

func ExampleFromLines() {
	rs, err := ignorefile.FromLines([]string{
		"# build output",
		"target",
		"!target/keep.txt",
	}, "/repo")
	if err != nil {
		panic(err)
	}

	fmt.Println(rs.IsExcluded("/repo/target/debug/app"))
	fmt.Println(rs.IsExcluded("/repo/target/keep.txt"))
	fmt.Println(rs.IsExcluded("/elsewhere/target"))
	// Output:
	// true
	// false
	// false
}
