package scripting

import (
	"image"

	"github.com/d5/tengo/v2"
)

const menuItemSpacing = 2

type textLine struct {
	pos  image.Point // tiles, relative to the window
	text string
}

type page struct {
	lines []textLine
}

type menuSpec struct {
	pos   image.Point
	items []string
}

// program is what running a script produces: a dialog window with one or
// more pages and an optional selection menu.
type program struct {
	window image.Rectangle // tiles
	pages  []page
	menu   *menuSpec
}

func (p *program) currentPage() *page {
	return &p.pages[len(p.pages)-1]
}

// builder collects the calls a script makes on the ui object.
type builder struct {
	prog      *program
	slotNames []string
}

func newBuilder(slotNames []string) *builder {
	return &builder{
		prog:      &program{pages: []page{{}}},
		slotNames: slotNames,
	}
}

func (b *builder) object() *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"window":     &tengo.UserFunction{Name: "window", Value: b.window},
		"text":       &tengo.UserFunction{Name: "text", Value: b.text},
		"center":     &tengo.UserFunction{Name: "center", Value: b.center},
		"page":       &tengo.UserFunction{Name: "page", Value: b.page},
		"menu":       &tengo.UserFunction{Name: "menu", Value: b.menu},
		"slot_names": &tengo.UserFunction{Name: "slot_names", Value: b.slotNamesArray},
	}}
}

func (b *builder) window(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 4 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := intArgs("window", args)
	if err != nil {
		return nil, err
	}
	b.prog.window = image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3])
	return tengo.UndefinedValue, nil
}

func (b *builder) text(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := intArgs("text", args[:2])
	if err != nil {
		return nil, err
	}
	s, err := stringArg("text", args[2])
	if err != nil {
		return nil, err
	}
	b.addLine(image.Pt(v[0], v[1]), s)
	return tengo.UndefinedValue, nil
}

func (b *builder) center(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := intArgs("center", args[:1])
	if err != nil {
		return nil, err
	}
	s, err := stringArg("center", args[1])
	if err != nil {
		return nil, err
	}
	x := (b.prog.window.Dx() - len(s)) / 2
	b.addLine(image.Pt(max(x, 0), v[0]), s)
	return tengo.UndefinedValue, nil
}

func (b *builder) page(args ...tengo.Object) (tengo.Object, error) {
	b.prog.pages = append(b.prog.pages, page{})
	return tengo.UndefinedValue, nil
}

func (b *builder) menu(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := intArgs("menu", args[:2])
	if err != nil {
		return nil, err
	}

	var elements []tengo.Object
	switch arr := args[2].(type) {
	case *tengo.Array:
		elements = arr.Value
	case *tengo.ImmutableArray:
		elements = arr.Value
	default:
		return nil, tengo.ErrInvalidArgumentType{Name: "items", Expected: "array", Found: args[2].TypeName()}
	}

	spec := &menuSpec{pos: image.Pt(v[0], v[1])}
	for _, el := range elements {
		s, err := stringArg("items", el)
		if err != nil {
			return nil, err
		}
		spec.items = append(spec.items, s)
	}
	b.prog.menu = spec
	return tengo.UndefinedValue, nil
}

func (b *builder) slotNamesArray(args ...tengo.Object) (tengo.Object, error) {
	arr := &tengo.ImmutableArray{Value: make([]tengo.Object, len(b.slotNames))}
	for i, name := range b.slotNames {
		arr.Value[i] = &tengo.String{Value: name}
	}
	return arr, nil
}

func (b *builder) addLine(pos image.Point, s string) {
	p := b.prog.currentPage()
	p.lines = append(p.lines, textLine{pos: pos, text: s})
}

func intArgs(name string, args []tengo.Object) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, ok := tengo.ToInt(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: name, Expected: "int", Found: a.TypeName()}
		}
		out[i] = v
	}
	return out, nil
}

func stringArg(name string, a tengo.Object) (string, error) {
	if s, ok := a.(*tengo.String); ok {
		return s.Value, nil
	}
	s, ok := tengo.ToString(a)
	if !ok {
		return "", tengo.ErrInvalidArgumentType{Name: name, Expected: "string", Found: a.TypeName()}
	}
	return s, nil
}
