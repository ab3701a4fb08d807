package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	kserrors "keysigner/internal/errors"
)

// promptPassphrase is the --passphrase value that asks for it interactively.
const promptPassphrase = "-"

// resolvePassphrase returns flag as-is unless it is "-", in which case the
// passphrase is read from in: without echo on a terminal, otherwise as the
// first line.
func resolvePassphrase(flag string, in io.Reader, prompt io.Writer) (string, error) {
	if flag != promptPassphrase {
		return flag, nil
	}
	fmt.Fprint(prompt, "Passphrase: ")
	defer fmt.Fprintln(prompt)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", kserrors.Wrap(err, "reading passphrase")
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", kserrors.Wrap(err, "reading passphrase")
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", kserrors.Wrap(kserrors.ErrEmptyValue, "passphrase")
	}
	return line, nil
}
