package ask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

type surveyDriver struct {
	opts   []survey.AskOpt
	errOut io.Writer
}

// NewSurveyDriver returns the interactive terminal driver. opts are passed to
// every survey.AskOne call, e.g. survey.WithStdio. Info messages go to the
// error writer configured through survey.WithStdio, or stderr.
func NewSurveyDriver(opts ...survey.AskOpt) Driver {
	return &surveyDriver{opts: opts, errOut: surveyErrWriter(opts)}
}

func surveyErrWriter(opts []survey.AskOpt) io.Writer {
	var cfg survey.AskOptions
	for _, opt := range opts {
		if opt != nil {
			_ = opt(&cfg)
		}
	}
	if cfg.Stdio.Err != nil {
		return cfg.Stdio.Err
	}
	return os.Stderr
}

func (d *surveyDriver) ReadLine(ctx context.Context, cfg LineConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	message := cfg.Text
	if cfg.ShowDefault {
		message = fmt.Sprintf("%s [%s]", message, cfg.Default)
	}
	var out string
	prompt := &survey.Input{
		Message: message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.errOut, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
