package ask

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type lineDriver struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineDriver returns a driver that writes prompts to w and reads plain
// lines from r. It suits pipes, non-TTY sessions and tests.
func NewLineDriver(r io.Reader, w io.Writer) Driver {
	return &lineDriver{
		reader: bufio.NewReader(r),
		out:    w,
	}
}

func (d *lineDriver) ReadLine(ctx context.Context, cfg LineConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(d.out, promptLine(cfg)); err != nil {
		return "", err
	}

	line, err := d.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *lineDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func promptLine(cfg LineConfig) string {
	text := cfg.Text
	if cfg.ShowDefault {
		text = fmt.Sprintf("%s [%s]", text, cfg.Default)
	}
	if strings.HasSuffix(text, "\n") {
		return text + "> "
	}
	return text + ": "
}
