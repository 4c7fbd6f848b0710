package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

func runValidate(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "usage: classguard validate <policy.json>")
		return 2
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := policy.Load(data); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, "OK")
	return 0
}
