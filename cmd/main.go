// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	bitvec "github.com/facebookincubator/go-bitvec"

	"github.com/urfave/cli/v2"
)

// config builds a bitvec.Config from the global flags
func config(c *cli.Context) (bitvec.Config, error) {
	cfg := bitvec.DefaultConfig
	rep, err := bitvec.ParseRepresentation(c.String("representation"))
	if err != nil {
		return cfg, err
	}
	cfg.Representation = rep
	cfg.Order = bitvec.Order(c.Bool("msb"))
	switch strings.ToLower(c.String("hash")) {
	case "murmur", "":
		cfg.HashFn = bitvec.MurmurHash64
	case "fnv":
		cfg.HashFn = bitvec.FNVHash64
	default:
		return cfg, fmt.Errorf("unknown hash function %q", c.String("hash"))
	}
	return cfg, nil
}

// operands parses every positional argument as a hex vector
func operands(c *cli.Context, cfg bitvec.Config, want int) ([]bitvec.Vector, error) {
	if c.NArg() < want {
		return nil, fmt.Errorf("%s: expected at least %d hex operands, got %d", c.Command.Name, want, c.NArg())
	}
	var vs []bitvec.Vector
	for _, arg := range c.Args().Slice() {
		v, err := bitvec.ParseHex(arg, cfg.Order, cfg.Representation)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func printVector(cfg bitvec.Config, v bitvec.Vector) {
	fmt.Printf("%s (%d bits)\n", hex.EncodeToString(v.ToBytes(cfg.Order)), v.Len())
}

func main() {
	app := &cli.App{
		Name:  "bitvec",
		Usage: "inspect and combine bit vectors given as hex",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "representation",
				Aliases: []string{"r"},
				Value:   "packed",
				Usage:   "storage used for operands: packed or reference",
			},
			&cli.BoolFlag{
				Name:  "msb",
				Usage: "hex input and output list the most significant byte first",
			},
			&cli.StringFlag{
				Name:  "hash",
				Value: "murmur",
				Usage: "hash function reported by describe: murmur or fnv",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "describe",
				Usage:     "describe a vector",
				ArgsUsage: "HEX",
				Action: func(c *cli.Context) error {
					cfg, err := config(c)
					if err != nil {
						return err
					}
					vs, err := operands(c, cfg, 1)
					if err != nil {
						return err
					}
					for _, v := range vs {
						fmt.Printf("%s: %d bits, %d set, significant length %d, hash %016x\n",
							v, v.Len(), bitvec.OnesCount(v), bitvec.SignificantLen(v), cfg.Hash(v))
						cfg.ExplainIndent(os.Stdout, "  ", v.Len())
						if err := bitvec.Dump(os.Stdout, v); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:      "op",
				Usage:     "combine vectors with and, or or xor",
				ArgsUsage: "HEX HEX [HEX...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "op",
						Value: "or",
						Usage: "operator: and, or, xor",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config(c)
					if err != nil {
						return err
					}
					vs, err := operands(c, cfg, 2)
					if err != nil {
						return err
					}
					var out bitvec.Vector
					switch strings.ToLower(c.String("op")) {
					case "and":
						out = vs[0].And(vs[1], readers(vs[2:])...)
					case "or":
						out = vs[0].Or(vs[1], readers(vs[2:])...)
					case "xor":
						out = vs[0].Xor(vs[1], readers(vs[2:])...)
					default:
						return fmt.Errorf("op: unknown operator %q", c.String("op"))
					}
					printVector(cfg, out)
					return nil
				},
			},
			{
				Name:      "not",
				Usage:     "complement a vector",
				ArgsUsage: "HEX",
				Action: func(c *cli.Context) error {
					cfg, err := config(c)
					if err != nil {
						return err
					}
					vs, err := operands(c, cfg, 1)
					if err != nil {
						return err
					}
					for _, v := range vs {
						printVector(cfg, v.Not())
					}
					return nil
				},
			},
			{
				Name:      "shift",
				Usage:     "shift a vector",
				ArgsUsage: "HEX",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: "left",
						Usage: "direction: left (toward the most significant bit) or right",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1,
						Usage:   "number of positions",
					},
					&cli.StringFlag{
						Name:    "elasticity",
						Aliases: []string{"e"},
						Value:   "none",
						Usage:   "none, expansion, contraction or both",
					},
					&cli.IntFlag{
						Name:  "start",
						Value: -1,
						Usage: "only shift bits at and above this index",
					},
					&cli.BoolFlag{
						Name:  "silent",
						Usage: "treat an out of range start as a no-op",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config(c)
					if err != nil {
						return err
					}
					e, err := bitvec.ParseElasticity(c.String("elasticity"))
					if err != nil {
						return err
					}
					vs, err := operands(c, cfg, 1)
					if err != nil {
						return err
					}
					left := true
					switch strings.ToLower(c.String("dir")) {
					case "left", "l":
					case "right", "r":
						left = false
					default:
						return fmt.Errorf("shift: unknown direction %q", c.String("dir"))
					}
					count := c.Int("count")
					for _, v := range vs {
						var out bitvec.Vector
						switch {
						case c.IsSet("start") && left:
							out, err = v.ShiftLeftFrom(c.Int("start"), count, e, c.Bool("silent"))
						case c.IsSet("start"):
							out, err = v.ShiftRightFrom(c.Int("start"), count, e, c.Bool("silent"))
						case left:
							out, err = v.ShiftLeft(count, e)
						default:
							out, err = v.ShiftRight(count, e)
						}
						if err != nil {
							return fmt.Errorf("shift: %w", err)
						}
						if out.Len() != v.Len() {
							log.Printf("%s resized vector from %d to %d bits", e, v.Len(), out.Len())
						}
						printVector(cfg, out)
					}
					return nil
				},
			},
			{
				Name:      "compare",
				Usage:     "order two vectors as unsigned magnitudes",
				ArgsUsage: "HEX HEX",
				Action: func(c *cli.Context) error {
					cfg, err := config(c)
					if err != nil {
						return err
					}
					vs, err := operands(c, cfg, 2)
					if err != nil {
						return err
					}
					fmt.Printf("%d equal=%t\n", vs[0].Compare(vs[1]), vs[0].Equal(vs[1]))
					return nil
				},
			},
			{
				Name:      "words",
				Usage:     "print the 32 bit word form of a vector",
				ArgsUsage: "HEX",
				Action: func(c *cli.Context) error {
					cfg, err := config(c)
					if err != nil {
						return err
					}
					vs, err := operands(c, cfg, 1)
					if err != nil {
						return err
					}
					for _, v := range vs {
						words := v.ToWords(cfg.Order)
						parts := make([]string, len(words))
						for i, w := range words {
							parts[i] = fmt.Sprintf("%08x", w)
						}
						fmt.Println(strings.Join(parts, " "))
					}
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func readers(vs []bitvec.Vector) []bitvec.Reader {
	rs := make([]bitvec.Reader, len(vs))
	for i, v := range vs {
		rs[i] = v
	}
	return rs
}
