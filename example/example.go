package main

import (
	"bytes"
	"fmt"
	"os"

	bitvec "github.com/facebookincubator/go-bitvec"
)

func main() {
	flags, err := bitvec.PackedFromBytes([]byte{0x0f}, bitvec.LSBFirst)
	if err != nil {
		panic(err)
	}
	mask, err := bitvec.ReferenceFromBytes([]byte{0xf0}, bitvec.LSBFirst)
	if err != nil {
		panic(err)
	}

	// operators never touch their operands, and mix representations
	fmt.Printf("%s & %s = %s\n", flags, mask, flags.And(mask))
	fmt.Printf("%s | %s = %s\n", flags, mask, flags.Or(mask))
	fmt.Printf("^%s = %s\n", flags, flags.Not())

	// a left shift with Expansion keeps the top bit
	top, err := bitvec.PackedFromBytes([]byte{0x80}, bitvec.LSBFirst)
	if err != nil {
		panic(err)
	}
	grown, err := top.ShiftLeft(1, bitvec.Expansion)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s << 1 = %s (%d bits)\n", top, grown, grown.Len())

	// and Contraction drops the cleared high bits afterward
	trimmed, err := grown.ShiftRight(4, bitvec.Contraction)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s >> 4 = %s (%d bits)\n", grown, trimmed, trimmed.Len())

	// vectors of different lengths compare by value
	wide, err := bitvec.PackedFromBytes([]byte{0x01, 0x00}, bitvec.LSBFirst)
	if err != nil {
		panic(err)
	}
	narrow, err := bitvec.ReferenceFromBytes([]byte{0x01}, bitvec.LSBFirst)
	if err != nil {
		panic(err)
	}
	fmt.Printf("equal=%t hash equal=%t\n", wide.Equal(narrow), wide.Hash() == narrow.Hash())

	bitvec.DefaultConfig.Explain(os.Stdout, grown.Len())
	if err := bitvec.Dump(os.Stdout, grown); err != nil {
		panic(err)
	}

	// Serialize the vector and report size
	buf := bytes.NewBuffer([]byte{})
	if _, err := grown.WriteTo(buf); err != nil {
		panic(err)
	}
	fmt.Printf("vector serializes into %d bytes\n", buf.Len())
}
