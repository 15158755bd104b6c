// Command hashcode prints the bcrypt hash of a staff access code for use as
// code_hash in the credential file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/deskmetrics/helpdesk-reports/internal/auth"
	"github.com/deskmetrics/helpdesk-reports/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var (
		codeFile string
		cost     int
	)
	flagSet := pflag.NewFlagSet("hashcode", pflag.ContinueOnError)
	flagSet.StringVar(&codeFile, "code-file", "", "read the code from this file instead of prompting")
	flagSet.IntVar(&cost, "cost", 12, "bcrypt cost; must equal AUTH_BCRYPT_COST")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	code, err := readCode(codeFile)
	if err != nil {
		return err
	}
	if err := validateCode(code); err != nil {
		return err
	}

	hash, err := auth.HashCode(code, cost)
	if err != nil {
		return fmt.Errorf("hash code: %w", err)
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

func validateCode(code string) error {
	if code == "" {
		return errors.New("code is empty")
	}
	if len(code) > service.MaxCodeLength {
		return fmt.Errorf("code exceeds %d characters", service.MaxCodeLength)
	}
	return nil
}

func readCode(codeFile string) (string, error) {
	if codeFile != "" && codeFile != "-" {
		data, err := os.ReadFile(codeFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", codeFile, err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	stdinFd := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFd) {
		return "", errors.New("no terminal available for interactive prompt (use --code-file)")
	}

	fmt.Fprint(os.Stderr, "Code: ")
	first, err := term.ReadPassword(stdinFd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read code: %w", err)
	}
	fmt.Fprint(os.Stderr, "Confirm code: ")
	second, err := term.ReadPassword(stdinFd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read confirmation: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("codes do not match")
	}
	return string(first), nil
}
