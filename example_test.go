package args_test

import (
	"fmt"
	"log"

	"github.com/aretw0/args"
)

func ExampleNew() {
	a, err := args.New("l,p#,d*", []string{"-l", "-p", "8080", "-d", "/var/log"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(a.IsValid(), a.Cardinality())
	fmt.Println(a.GetBoolean('l'), a.GetInt('p'), a.GetString('d'))
	fmt.Println(a.Usage())
	// Output:
	// true 3
	// true 8080 /var/log
	// -[l,p#,d*]
}

func ExampleArgs_ErrorMessage() {
	a, err := args.New("x##", []string{"-x", "Forty two"})
	if err != nil {
		log.Fatal(err)
	}

	if !a.IsValid() {
		msg, _ := a.ErrorMessage()
		fmt.Println(msg)
	}
	// Output: Argument -x expects a double but was 'Forty two'.
}

func ExampleNew_bundled() {
	a, err := args.New("x,y,n#", []string{"-xyn", "3", "stray"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(a.Has('x'), a.Has('y'), a.GetInt('n'), a.Cardinality())
	// Output: true true 3 3
}
