package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	simplequestion "github.com/goliatone/go-simplequestion"
	"github.com/goliatone/go-simplequestion/pkg/ask"
	pkgopenapi "github.com/goliatone/go-simplequestion/pkg/openapi"
	"github.com/goliatone/go-simplequestion/pkg/orchestrator"
	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
)

var errDeclined = errors.New("declined")

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		v:      viper.New(),
		logger: zap.NewNop(),
	}
	setViperEnvPrefix(a.v, envPrefix)

	root := &cobra.Command{
		Use:           "simplequestion",
		Short:         "Ask console questions from documents or OpenAPI operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlagsToViper(cmd, a.v); err != nil {
				return err
			}
			return a.configureLogger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String("format", "json", "answer output format: json, yaml or pretty")
	flags.StringP("output", "o", "", "write answers to this file instead of stdout")
	flags.Bool("plain", false, "read plain lines instead of using the interactive terminal")
	flags.Int("max-attempts", 0, "override attempts per question (negative never gives up)")
	flags.Duration("timeout", 0, "give up after this long, including remote fetches")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(a.askCommand(), a.openAPICommand(), a.confirmCommand())
	return root
}

func (a *app) askCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <file>",
		Short: "Ask every question in a YAML or JSON questionnaire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := questionnaire.LoadFile(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, orchestrator.Request{Questionnaire: q})
		},
	}
	addRunFlags(cmd)
	return cmd
}

func (a *app) openAPICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openapi <source>",
		Short: "Ask for the request body of an OpenAPI operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pkgopenapi.ParseSource(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, orchestrator.Request{
				Source:      src,
				OperationID: a.v.GetString("operation"),
			})
		},
	}
	cmd.Flags().String("operation", "", "operationId to ask for")
	_ = cmd.MarkFlagRequired("operation")
	addRunFlags(cmd)
	return cmd
}

func (a *app) confirmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm <message>",
		Short: "Ask a yes/no question; exits 1 when the answer is n",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			yes, err := a.asker().Confirm(ctx, strings.Join(args, " "), a.v.GetBool("default-yes"))
			if err != nil {
				return err
			}
			if !yes {
				return errDeclined
			}
			return nil
		},
	}
	cmd.Flags().Bool("default-yes", false, "treat an empty answer as y")
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringToString("set", nil, "answer a question up front, e.g. --set env=p")
	cmd.Flags().String("patch", "", "YAML or JSON file patching questions before they are asked")
}

func (a *app) run(cmd *cobra.Command, req orchestrator.Request) error {
	format, err := orchestrator.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return err
	}
	presets, err := cmd.Flags().GetStringToString("set")
	if err != nil {
		return err
	}
	if len(presets) > 0 {
		req.Presets = make(map[string]any, len(presets))
		for name, value := range presets {
			req.Presets[name] = value
		}
	}

	options := []orchestrator.Option{
		orchestrator.WithAsker(a.asker()),
		orchestrator.WithLogger(a.logger),
		orchestrator.WithLoader(simplequestion.NewLoader(pkgopenapi.WithHTTPFallback(a.v.GetDuration("timeout")))),
	}
	transformer, err := a.transformer()
	if err != nil {
		return err
	}
	if transformer != nil {
		options = append(options, orchestrator.WithTransformer(transformer))
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	answers, err := orchestrator.New(options...).Run(ctx, req)
	if err != nil {
		return err
	}
	data, err := orchestrator.Encode(answers, format)
	if err != nil {
		return err
	}
	return a.write(data)
}

// transformer combines --patch and --max-attempts.
func (a *app) transformer() (orchestrator.Transformer, error) {
	var chain []orchestrator.Transformer

	if path := a.v.GetString("patch"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read patch %s: %w", path, err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		chain = append(chain, preset)
	}
	if attempts := a.v.GetInt("max-attempts"); attempts != 0 {
		chain = append(chain, orchestrator.TransformerFunc(func(_ context.Context, q *questionnaire.Questionnaire) error {
			for i := range q.Questions {
				q.Questions[i].MaxAttempts = attempts
			}
			return nil
		}))
	}

	if len(chain) == 0 {
		return nil, nil
	}
	return orchestrator.TransformerFunc(func(ctx context.Context, q *questionnaire.Questionnaire) error {
		for _, t := range chain {
			if err := t.Transform(ctx, q); err != nil {
				return err
			}
		}
		return nil
	}), nil
}

func (a *app) asker() *ask.Asker {
	var driver ask.Driver
	if a.v.GetBool("plain") {
		driver = ask.NewLineDriver(a.in, a.errOut)
	} else {
		driver = ask.NewSurveyDriver(survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	}
	return ask.New(ask.WithDriver(driver), ask.WithLogger(a.logger))
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

func (a *app) write(data []byte) error {
	if path := a.v.GetString("output"); path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write answers: %w", err)
		}
		a.logger.Info("answers written", zap.String("path", path))
		return nil
	}
	_, err := a.out.Write(data)
	return err
}

func (a *app) configureLogger() error {
	level, err := zapcore.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(a.errOut), level)
	a.logger = zap.New(core).Named("simplequestion")
	return nil
}
