package main

import (
	"errors"
	"fmt"

	"propath/internal/mapping"
)

var ErrScriptFailed = errors.New("script failed")

// GetCmd represents the get command
type GetCmd struct {
	File   string    `short:"f" required:"" help:"YAML or JSON document." type:"existingfile"`
	Path   string    `arg:"" help:"Property path."`
	Format string    `help:"Output format." enum:"yaml,json,dump" default:"yaml"`
	Mode   ModeFlags `embed:""`
}

func (cmd *GetCmd) Run(ctx *Context) error {
	doc, err := loadDocument(cmd.File)
	if err != nil {
		return err
	}

	v, err := ctx.Util.GetValue(doc.root, cmd.Path, cmd.Mode.Mode())
	if err != nil {
		return err
	}

	out, err := encode(v, cmd.Format)
	if err != nil {
		return err
	}

	_, err = ctx.Out.Write(out)

	return err
}

// SetCmd represents the set command
type SetCmd struct {
	File  string    `short:"f" required:"" help:"YAML or JSON document." type:"existingfile"`
	Path  string    `arg:"" help:"Property path."`
	Value string    `arg:"" help:"Value, read as YAML."`
	Write bool      `short:"w" help:"Write the document back instead of printing it."`
	Diff  bool      `help:"Print a line diff of the change."`
	Mode  ModeFlags `embed:""`
}

func (cmd *SetCmd) Run(ctx *Context) error {
	doc, err := loadDocument(cmd.File)
	if err != nil {
		return err
	}

	return change(ctx, doc, cmd.Write, cmd.Diff, func() error {
		return ctx.Util.SetValue(&doc.root, cmd.Path, parseValue(cmd.Value), cmd.Mode.Mode())
	})
}

// HasCmd represents the has command
type HasCmd struct {
	File string    `short:"f" required:"" help:"YAML or JSON document." type:"existingfile"`
	Path string    `arg:"" help:"Property path."`
	Mode ModeFlags `embed:""`
}

func (cmd *HasCmd) Run(ctx *Context) error {
	doc, err := loadDocument(cmd.File)
	if err != nil {
		return err
	}

	ok, err := ctx.Util.HasValue(doc.root, cmd.Path, cmd.Mode.Mode())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.Out, ok)

	return err
}

// TypeCmd represents the type command
type TypeCmd struct {
	File string    `short:"f" required:"" help:"YAML or JSON document." type:"existingfile"`
	Path string    `arg:"" help:"Property path."`
	Mode ModeFlags `embed:""`
}

func (cmd *TypeCmd) Run(ctx *Context) error {
	doc, err := loadDocument(cmd.File)
	if err != nil {
		return err
	}

	t, err := ctx.Util.TypeOf(doc.root, cmd.Path, cmd.Mode.Mode())
	if err != nil {
		return err
	}

	if t == nil {
		_, err = fmt.Fprintln(ctx.Out, "absent")
		return err
	}

	_, err = fmt.Fprintln(ctx.Out, t)

	return err
}

// ApplyCmd represents the apply command
type ApplyCmd struct {
	File   string `short:"f" required:"" help:"YAML or JSON document." type:"existingfile"`
	Script string `arg:"" help:"YAML operation script." type:"existingfile"`
	Write  bool   `short:"w" help:"Write the document back instead of printing it."`
	Diff   bool   `help:"Print a line diff of the change."`
}

func (cmd *ApplyCmd) Run(ctx *Context) error {
	script, err := mapping.LoadFile(cmd.Script)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.File)
	if err != nil {
		return err
	}

	var res *mapping.Result

	err = change(ctx, doc, cmd.Write, cmd.Diff, func() error {
		res, err = mapping.Apply(ctx.Util, &doc.root, script)
		return err
	})
	if err != nil {
		return err
	}

	p := ctx.Palette

	for _, w := range res.Warnings {
		fmt.Fprintln(ctx.Err, p.warn("warning: "+w.String()))
	}

	for _, f := range res.Failures {
		fmt.Fprintln(ctx.Err, p.fail("FAIL "+f.String()))
	}

	summary := fmt.Sprintf("applied %d, checked %d, failed %d", res.Applied, res.Checked, len(res.Failures))
	if !res.OK() {
		fmt.Fprintln(ctx.Err, p.fail(summary))
		return fmt.Errorf("%w: %d failing steps", ErrScriptFailed, len(res.Failures))
	}

	fmt.Fprintln(ctx.Err, p.ok(summary))

	return nil
}

// change runs fn against doc and reports the result: a diff, the written
// file or the new document.
func change(ctx *Context, doc *document, write, diff bool, fn func() error) error {
	before, err := doc.encode()
	if err != nil {
		return err
	}

	if err := fn(); err != nil {
		return err
	}

	after, err := doc.encode()
	if err != nil {
		return err
	}

	if diff {
		fmt.Fprint(ctx.Out, lineDiff(string(before), string(after), ctx.Palette))
	}

	if write {
		ctx.Logger.Info("writing document", "path", doc.path)
		return doc.save()
	}

	if !diff {
		_, err = ctx.Out.Write(after)
	}

	return err
}
