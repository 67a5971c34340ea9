// Copyright 2025 go-bfloat16 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bf16 inspects bfloat16 values and bit patterns.
//
// Usage:
//
//	bf16 convert -f 3.5        # narrow a float and show the pattern
//	bf16 convert -bits 0x3F80  # decode a raw 16-bit pattern
//	bf16 info                  # report native bfloat16 CPU support
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vortexml/go-bfloat16/bf16"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "info":
		runInfo()
	case "version":
		fmt.Printf("bf16 version %s\n", version)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	floatArg := fs.String("f", "", "float value to narrow to bfloat16")
	bitsArg := fs.String("bits", "", "raw 16-bit pattern to decode (hex, e.g. 0x3F80)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var b bf16.BFloat16
	switch {
	case *floatArg != "" && *bitsArg != "":
		return fmt.Errorf("-f and -bits are mutually exclusive")
	case *floatArg != "":
		f, err := strconv.ParseFloat(*floatArg, 32)
		if err != nil {
			return fmt.Errorf("invalid float %q: %v", *floatArg, err)
		}
		b = bf16.FromFloat32(float32(f))
	case *bitsArg != "":
		bits, err := parseBits(*bitsArg)
		if err != nil {
			return err
		}
		b = bf16.FromBits(bits)
	default:
		return fmt.Errorf("one of -f or -bits is required")
	}

	fmt.Print(describe(b))
	return nil
}

// parseBits parses a 16-bit pattern in hex (with or without 0x prefix).
func parseBits(s string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	bits, err := strconv.ParseUint(trimmed, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid bit pattern %q: %v", s, err)
	}
	return uint16(bits), nil
}

// describe renders the full field breakdown of a value.
func describe(b bf16.BFloat16) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "value:    %s\n", b)
	fmt.Fprintf(&sb, "float32:  %v\n", b.Float32())
	fmt.Fprintf(&sb, "bits:     0x%04X\n", b.Bits())
	fmt.Fprintf(&sb, "sign:     %d\n", b.Bits()>>15)
	fmt.Fprintf(&sb, "exp:      0x%02X (unbiased %s)\n", (b.Bits()>>7)&0xFF, exponentString(b))
	fmt.Fprintf(&sb, "mantissa: 0x%02X\n", b.Mantissa())
	fmt.Fprintf(&sb, "class:    %s\n", classString(b))
	return sb.String()
}

func exponentString(b bf16.BFloat16) string {
	if e := b.Exponent(); e != math.MaxInt16 {
		return strconv.Itoa(e)
	}
	return "n/a"
}

func classString(b bf16.BFloat16) string {
	switch {
	case b.IsNaN():
		return "nan"
	case b.IsInf():
		return "infinity"
	case b.IsZero():
		return "zero"
	case b.IsDenormal():
		return "denormal"
	}
	return "normal"
}

func runInfo() {
	fmt.Printf("native bfloat16 instructions: %v\n", bf16.HasNativeBF16())
}

func printUsage() {
	fmt.Println(`bf16 - bfloat16 value inspector

Usage:
  bf16 <command> [options]

Commands:
  convert   Narrow a float (-f) or decode a raw pattern (-bits)
  info      Report native bfloat16 CPU support
  version   Print version information
  help      Show this help message

Run 'bf16 convert --help' for the convert options.`)
}
