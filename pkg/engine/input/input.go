// Package input reads player commands from the terminal and decodes them
// into high-level intents. Arrow keys fire immediately from raw mode; word
// commands are typed and submitted with Enter, so the same reader serves both
// quick movement and argument-taking commands.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// ReadLine reads one line from stdin in cooked mode, without the trailing
// newline. Used for prompts ("Take what?") and as the fallback when the
// terminal cannot enter raw mode (piped input, tests).
func ReadLine() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadCommand reads one player command. In raw mode an arrow key returns its
// code ("arrow_up" etc.) immediately; any other printable input is collected
// with echo until Enter and returned as typed. Ctrl+C returns "quit".
func ReadCommand() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Not a terminal; fall back to line input.
		return ReadLine()
	}
	defer term.Restore(fd, oldState)

	// Raw mode bypasses the buffered reader; drop any stale buffer.
	stdinReader = nil

	b1, err := readByte()
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	if code := readArrowKey(b1); code != "" {
		fmt.Print("\r\n")
		return code, nil
	}

	switch b1 {
	case 3: // Ctrl+C
		fmt.Print("\r\n")
		return "quit", nil
	case '\r', '\n':
		return "", nil
	}

	var line []byte
	if b1 >= 32 && b1 < 127 {
		line = append(line, b1)
		fmt.Print(string(b1))
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		switch {
		case b == 0x1b:
			// Arrow pressed mid-line; swallow the sequence.
			readArrowKey(b)
		case b == 127 || b == 8: // backspace
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Print("\b \b")
			}
		case b == '\r' || b == '\n':
			fmt.Print("\r\n")
			return string(line), nil
		case b == 3: // Ctrl+C
			fmt.Print("\r\n")
			return "quit", nil
		case b >= 32 && b < 127:
			line = append(line, b)
			fmt.Print(string(b))
		}
	}
	return string(line), nil
}

func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readArrowKey consumes the rest of an escape sequence started by firstByte
// and returns the arrow code, or "" when the byte did not start an arrow
// sequence. Handles both CSI (ESC [) and SS3 (ESC O) encodings.
func readArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}
