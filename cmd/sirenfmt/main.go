// Command sirenfmt validates Siren documents and rewrites them in canonical form.
//
// Usage:
//
//	sirenfmt [flags] [file]
//
// If no file is given, the document is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vmihailenco/msgpack"

	sirenfu "github.com/ccbrown/siren-fu"
	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren"
	"github.com/ccbrown/siren-fu/siren/types"
)

type options struct {
	indent        string
	format        string
	decode        bool
	messages      []string
	attachActions bool
}

// Run runs the command with the given arguments and returns its exit code.
func Run(stdin io.Reader, stdout, stderr io.Writer, args ...string) int {
	flags := pflag.NewFlagSet("sirenfmt", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var opts options
	flags.StringVar(&opts.indent, "indent", "", "the string to indent json output with")
	flags.StringVar(&opts.format, "format", "json", "the output format (json or msgpack)")
	flags.BoolVar(&opts.decode, "decode", false, "convert the document to a resource and back before writing it")
	flags.StringArrayVarP(&opts.messages, "messages", "m", nil, "yaml or toml message files to look up titles in when decoding")
	flags.BoolVar(&opts.attachActions, "attach-actions", false, "attach actions to links with the same href when decoding")
	verbose := flags.BoolP("verbose", "v", false, "log what is dropped or ignored")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.format != "json" && opts.format != "msgpack" {
		fmt.Fprintln(stderr, "the --format flag must be json or msgpack")
		return 2
	}

	if flags.NArg() > 1 {
		fmt.Fprintln(stderr, "at most one file may be given")
		return 2
	}

	input := stdin
	if path := flags.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(stderr, "error opening input: "+err.Error())
			return 1
		}
		defer f.Close()
		input = f
		logger.WithField("path", path).Debug("reading document")
	}

	data, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintln(stderr, "error reading input: "+err.Error())
		return 1
	}

	output, err := format(data, opts, logger)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	if _, err := stdout.Write(output); err != nil {
		fmt.Fprintln(stderr, "error writing output: "+err.Error())
		return 1
	}
	return 0
}

func format(data []byte, opts options, logger logrus.FieldLogger) ([]byte, error) {
	doc, err := siren.ReadDocument(data)
	if err != nil {
		return nil, err
	}

	if opts.decode {
		codec, err := sirenfu.NewCodec(&sirenfu.Config{
			Logger:        logger,
			MessageFiles:  opts.messages,
			AttachActions: opts.attachActions,
			ResolveShape: func(entity *types.Entity) (siren.Shape, bool) {
				return siren.InferShape(entity), true
			},
		})
		if err != nil {
			return nil, err
		}

		shape := siren.InferShape(doc)
		logger.WithField("shape", shape.Kind.String()).Debug("decoding document")
		resource, err := codec.DecodeDocument(doc, shape)
		if err != nil {
			return nil, err
		}
		if doc, err = codec.EncodeDocument(resource); err != nil {
			return nil, err
		}
	} else if err := parseProperties(doc); err != nil {
		return nil, err
	}

	if opts.format == "msgpack" {
		buf, err := msgpack.Marshal(doc)
		return buf, errors.Wrap(err, "unable to encode msgpack")
	}

	buf, err := siren.MarshalDocument(doc, opts.indent)
	if err != nil {
		return nil, err
	}
	return append(buf, '\n'), nil
}

// parseProperties replaces the raw properties of the entity and its sub-entities with parsed
// values so that they're output in canonical form.
func parseProperties(entity *types.Entity) error {
	if raw, ok := entity.Properties.(jsoniter.RawMessage); ok {
		if len(raw) == 0 {
			entity.Properties = nil
		} else {
			v, err := hypermedia.ParseValue(raw)
			if err != nil {
				return err
			}
			entity.Properties = v
		}
	}
	for i := range entity.Entities {
		if err := parseProperties(&entity.Entities[i]); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	os.Exit(Run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]...))
}
