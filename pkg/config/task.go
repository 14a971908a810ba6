package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/buildlocale/pkg/builder"
	"github.com/dmitrymomot/buildlocale/pkg/locale"
)

// Options is a partial set of build options. Nil fields are unset and do
// not override lower layers.
type Options struct {
	Dest               *string  `yaml:"dest"`
	FilterLocale       []string `yaml:"filterLocale"`
	Prefix             *string  `yaml:"prefix"`
	Suffix             *string  `yaml:"suffix"`
	Sufix              *string  `yaml:"sufix"`
	Namespace          *bool    `yaml:"namespace"`
	StripNamespaceBase *string  `yaml:"stripNamespaceBase"`
	Force              *bool    `yaml:"force"`
	Manifest           *string  `yaml:"manifest"`
}

// Overlay returns o with every field set in top replacing its own.
func (o Options) Overlay(top Options) Options {
	out := o
	if top.Dest != nil {
		out.Dest = top.Dest
	}
	if top.FilterLocale != nil {
		out.FilterLocale = top.FilterLocale
	}
	if top.Prefix != nil {
		out.Prefix = top.Prefix
	}
	if s := top.suffix(); s != nil {
		out.Suffix, out.Sufix = s, nil
	}
	if top.Namespace != nil {
		out.Namespace = top.Namespace
	}
	if top.StripNamespaceBase != nil {
		out.StripNamespaceBase = top.StripNamespaceBase
	}
	if top.Force != nil {
		out.Force = top.Force
	}
	if top.Manifest != nil {
		out.Manifest = top.Manifest
	}
	return out
}

func (o Options) suffix() *string {
	if o.Suffix != nil {
		return o.Suffix
	}
	return o.Sufix
}

// Build converts o into builder options, starting from builder.DefaultOptions.
func (o Options) Build() (builder.Options, error) {
	opts := builder.DefaultOptions()
	if o.Dest != nil && *o.Dest != "" {
		opts.Dest = *o.Dest
	}
	if len(o.FilterLocale) > 0 {
		codes, err := locale.ParseList(o.FilterLocale)
		if err != nil {
			return builder.Options{}, fmt.Errorf("%w: filterLocale: %w", ErrInvalidOptions, err)
		}
		opts.FilterLocale = codes
	}
	if o.Prefix != nil {
		opts.Prefix = *o.Prefix
	}
	if s := o.suffix(); s != nil {
		opts.Suffix = *s
	}
	if o.Namespace != nil {
		opts.Namespace = *o.Namespace
	}
	if o.StripNamespaceBase != nil {
		opts.StripNamespaceBase = *o.StripNamespaceBase
	}
	if o.Force != nil {
		opts.Force = *o.Force
	}
	if o.Manifest != nil {
		opts.Manifest = *o.Manifest
	}
	return opts, nil
}

// StringList accepts either a single string or a list of strings.
type StringList []string

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			*l = nil
			return nil
		}
		*l = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", value.Line)
	}
}

// Target is a named set of input patterns with its own options.
type Target struct {
	Name    string
	Src     StringList
	Options Options
}

// Task is a parsed task file. Targets keep the order of the file.
type Task struct {
	Options Options
	Targets []Target
}

type targetBody struct {
	Src     StringList `yaml:"src"`
	Options Options    `yaml:"options"`
}

func (t *Task) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Options Options   `yaml:"options"`
		Targets yaml.Node `yaml:"targets"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	task := Task{Options: raw.Options}
	switch raw.Targets.Kind {
	case 0:
	case yaml.MappingNode:
		seen := make(map[string]struct{}, len(raw.Targets.Content)/2)
		for i := 0; i+1 < len(raw.Targets.Content); i += 2 {
			name := raw.Targets.Content[i].Value
			if _, dup := seen[name]; dup {
				return fmt.Errorf("line %d: duplicate target %q", raw.Targets.Content[i].Line, name)
			}
			seen[name] = struct{}{}

			var body targetBody
			if err := raw.Targets.Content[i+1].Decode(&body); err != nil {
				return fmt.Errorf("target %q: %w", name, err)
			}
			task.Targets = append(task.Targets, Target{Name: name, Src: body.Src, Options: body.Options})
		}
	default:
		return fmt.Errorf("line %d: targets must be a mapping", raw.Targets.Line)
	}

	*t = task
	return nil
}

// ParseTask parses a YAML task file.
func ParseTask(data []byte) (*Task, error) {
	var t Task
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Join(ErrInvalidTaskFile, err)
	}
	return &t, nil
}

// LoadTask reads and parses the task file at path.
func LoadTask(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTaskFileNotFound, path)
		}
		return nil, errors.Join(ErrInvalidTaskFile, err)
	}
	t, err := ParseTask(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Target returns the target with the given name.
func (t *Task) Target(name string) (Target, error) {
	for _, tg := range t.Targets {
		if tg.Name == name {
			return tg, nil
		}
	}
	return Target{}, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
}

// Resolve layers the task options, the target options and overrides, and
// converts the result into builder options.
func (t *Task) Resolve(target Target, overrides Options) (builder.Options, error) {
	return t.Options.Overlay(target.Options).Overlay(overrides).Build()
}
