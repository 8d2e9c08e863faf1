package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetAmount prompts for a whole-rupiah amount. Thousands separators in
// either local style ("1.500.000") or comma style are tolerated.
func GetAmount(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	raw, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	raw = strings.NewReplacer(".", "", ",", "", " ", "").Replace(raw)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return n, nil
}

// ChooseOption prints the numbered options and reads a selection, either by
// number or by exact value.
func ChooseOption(reader *bufio.Reader, prompt string, options []string, w io.Writer) (string, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt)
	}

	choice, err := GetSimpleText(reader, "Pick one", w)
	if err != nil {
		return "", err
	}

	if idx, err := strconv.Atoi(choice); err == nil {
		if idx < 1 || idx > len(options) {
			return "", fmt.Errorf("choice out of range: %d", idx)
		}
		return options[idx-1], nil
	}

	for _, opt := range options {
		if strings.EqualFold(choice, opt) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("unknown option: %q", choice)
}
