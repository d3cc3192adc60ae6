package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/argview/argview"
)

var (
	separatorFlag = kingpin.Flag("separator", "Split words on this key instead of whitespace.").Short('s').PlaceHolder("KEY").String()
	keepSpaceFlag = kingpin.Flag("keep-space", "Keep surrounding whitespace on words instead of stripping it.").Bool()
	quoteFlags    = kingpin.Flag("quote", "Recognise a quote pair instead of the default table, as OPEN:CLOSE or OPEN for symmetric pairs. May be repeated.").Short('q').PlaceHolder("OPEN:CLOSE").Strings()
	reprFlag      = kingpin.Flag("repr", "Dump the words as a Go value.").Bool()

	textSupplied = false
	textArg      = kingpin.Arg("text", "Text to split. Read from stdin when omitted.").Action(markTextSupplied).String()
)

// markTextSupplied fires only when the text argument is present on the
// command line, so an explicitly empty argument stays distinguishable
// from an omitted one.
func markTextSupplied(*kingpin.ParseContext) error {
	textSupplied = true
	return nil
}

func main() {
	kingpin.CommandLine.Help = `Splits command-line-style text into argument words, honouring quoted
phrases and backslash escapes.`
	kingpin.Parse()

	text, err := inputText(textSupplied, *textArg, os.Stdin)
	kingpin.FatalIfError(err, "")

	var options []argview.Option
	if *separatorFlag != "" {
		sep, err := argview.NewSeparator(*separatorFlag, !*keepSpaceFlag)
		kingpin.FatalIfError(err, "")
		options = append(options, argview.WithSeparator(sep))
	} else if *keepSpaceFlag {
		options = append(options, argview.WithSeparator(argview.Separator{}))
	}
	if len(*quoteFlags) > 0 {
		pairs := make([]argview.Pair, 0, len(*quoteFlags))
		for _, q := range *quoteFlags {
			start, end, _ := strings.Cut(q, ":")
			pairs = append(pairs, argview.Pair{Start: start, End: end})
		}
		quotes, err := argview.NewQuotation(pairs...)
		kingpin.FatalIfError(err, "")
		options = append(options, argview.WithQuotation(quotes))
	}

	words, err := argview.Split(text, options...)
	kingpin.FatalIfError(err, "")

	if *reprFlag {
		repr.Println(words)
		return
	}
	for _, word := range words {
		fmt.Println(word)
	}
}

// inputText returns the text to split: the supplied argument, even when
// empty, or everything on stdin when no argument was given.
func inputText(supplied bool, arg string, stdin io.Reader) (string, error) {
	if supplied {
		return arg, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
