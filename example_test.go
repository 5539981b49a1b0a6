package panglib_test

import (
	"fmt"

	"github.com/pangya-tools/panglib/dat"
	"github.com/pangya-tools/panglib/locale"
	"github.com/pangya-tools/panglib/record"
)

func Example_stringTable() {
	f, err := dat.Parse([]byte("alpha\x00beta\x00"), locale.ASCII())
	if err != nil {
		panic(err)
	}
	fmt.Println(f.Entries)

	out, _ := f.Bytes()
	fmt.Printf("%q\n", out)
	// Output:
	// [alpha beta]
	// "alpha\x00beta\x00"
}

func Example_fixedRecord() {
	schema := record.MustSchema("Sample", []record.Field{
		record.Uint32("count"),
		record.String("name", 8),
	})
	codec := record.NewCodec(locale.ASCII())

	r, err := codec.Decode(schema, []byte{0x01, 0, 0, 0, 'h', 'i', 0, 0, 0, 0, 0, 0})
	if err != nil {
		panic(err)
	}
	for name, v := range r.All() {
		fmt.Printf("%s=%v\n", name, v)
	}
	fmt.Println(schema)
	// Output:
	// count=1
	// name=hi
	// Sample{2 fields, 12 bytes, uniform/4}
}
