// Command bncalc evaluates a batch of BN expressions concurrently, one per
// input line, using a worker pool of scratch buffers managed by
// utils/concurrency.ResourceManager.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/arbor-bn/bignum/bn"
	"github.com/arbor-bn/bignum/utils/concurrency"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent evaluation workers")
	flag.Parse()

	lines, err := readLines(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "bncalc:", err)
		os.Exit(1)
	}

	if *workers < 1 {
		*workers = 1
	}
	buffers := make([]*strings.Builder, *workers)
	for i := range buffers {
		buffers[i] = new(strings.Builder)
	}
	rm := concurrency.NewRessourceManager(buffers)

	results := make([]string, len(lines))
	for i, line := range lines {
		i, line := i, line
		rm.Run(func(buf *strings.Builder) (err error) {
			defer func() {
				if p := recover(); p != nil {
					results[i] = fmt.Sprintf("%s => error: %v", line, p)
				}
			}()
			buf.Reset()
			out, evalErr := evaluate(line)
			if evalErr != nil {
				results[i] = fmt.Sprintf("%s => error: %v", line, evalErr)
				return nil
			}
			buf.WriteString(line)
			buf.WriteString(" => ")
			buf.WriteString(out)
			results[i] = buf.String()
			return nil
		})
	}
	if err := rm.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "bncalc:", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Println(r)
	}
}

// readLines reads expressions from the file named by args[0], or stdin if
// no file is given. Blank lines and lines starting with "#" are skipped.
func readLines(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		t := strings.TrimSpace(sc.Text())
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		lines = append(lines, t)
	}
	return lines, sc.Err()
}

// evaluate parses and runs a single "op operand..." expression line. The
// binary operators are add/sub/mul/quo/mod/pow; the unary operators are
// neg/abs/recip/log10/exp10/log2/exp2/log/exp/factorial.
func evaluate(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty expression")
	}
	op := fields[0]

	switch op {
	case "add", "sub", "mul", "quo", "mod", "pow":
		if len(fields) != 3 {
			return "", fmt.Errorf("%s requires two operands", op)
		}
		a, err := bn.Parse(fields[1])
		if err != nil {
			return "", err
		}
		b, err := bn.Parse(fields[2])
		if err != nil {
			return "", err
		}
		var result bn.BN
		switch op {
		case "add":
			result = bn.Add(a, b)
		case "sub":
			result = bn.Sub(a, b)
		case "mul":
			result = bn.Mul(a, b)
		case "quo":
			result = bn.Quo(a, b)
		case "mod":
			result = bn.Mod(a, b)
		case "pow":
			result = bn.Pow(a, b)
		}
		return result.String(), nil

	case "neg", "abs", "recip", "log10", "exp10", "log2", "exp2", "log", "exp", "factorial":
		if len(fields) != 2 {
			return "", fmt.Errorf("%s requires one operand", op)
		}
		a, err := bn.Parse(fields[1])
		if err != nil {
			return "", err
		}
		var result bn.BN
		switch op {
		case "neg":
			result = bn.Neg(a)
		case "abs":
			result = bn.Abs(a)
		case "recip":
			result = bn.Reciprocal(a)
		case "log10":
			result = bn.Log10(a)
		case "exp10":
			result = bn.Exp10(a)
		case "log2":
			result = bn.Log2(a)
		case "exp2":
			result = bn.Exp2(a)
		case "log":
			result = bn.Log(a)
		case "exp":
			result = bn.Exp(a)
		case "factorial":
			result = bn.Factorial(a)
		}
		return result.String(), nil

	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
}
