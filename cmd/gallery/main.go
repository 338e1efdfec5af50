// Command gallery exercises the framework without a windowing backend:
// it assembles a small interface, records one frame into a display list
// and simulates a few interactions, printing the commands the widgets
// post. Useful as a smoke test and as a composition example.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
	"github.com/mkaudio-company/mkgraphic/pkg/theme"
	"github.com/mkaudio-company/mkgraphic/pkg/view"
	"github.com/mkaudio-company/mkgraphic/pkg/widgets"
)

func main() {
	themePath := flag.String("theme", "", "optional theme yaml file")
	width := flag.Float64("width", 480, "view width")
	height := flag.Float64("height", 320, "view height")
	flag.Parse()

	if err := run(*themePath, float32(*width), float32(*height)); err != nil {
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
}

func run(themePath string, width, height float32) error {
	th, err := theme.LoadOptional(themePath)
	if err != nil {
		return err
	}

	size := graphics.Extent{Width: width, Height: height}
	v, err := view.New(size, view.WithTheme(th))
	if err != nil {
		return err
	}
	v.SetCommandSink(func(cmd element.Command) {
		if click, ok := cmd.(widgets.ClickCommand); ok {
			fmt.Printf("clicked %q\n", click.ID)
		}
	})

	v.SetContent(buildContent())

	var rec rendering.PictureRecorder
	canvas := rec.BeginRecording(size)
	v.Draw(canvas)
	list := rec.EndRecording()
	fmt.Printf("frame: %d drawing ops for %gx%g\n", list.Len(), width, height)

	// Activate both buttons from the keyboard.
	for i := 0; i < 2; i++ {
		if !v.FocusNext() {
			break
		}
		v.Key(element.KeyEvent{Key: element.KeyEnter, Action: element.KeyPress})
	}
	return nil
}

func buildContent() element.Element {
	buttons := element.NewHTile(
		widgets.NewButton("ok", "OK"),
		widgets.NewButton("cancel", "Cancel"),
	)
	buttons.SetSpacing(8)

	body := element.NewVTile(
		widgets.NewHeading("Gallery"),
		widgets.NewSpacer(),
		element.NewCenter(widgets.NewLabel("A small retained-mode interface.")),
		widgets.NewSpacer(),
		element.NewRight(buttons),
	)
	body.SetSpacing(4)

	return element.NewLayer(
		widgets.NewBox(graphics.Color(0xFF202227)),
		element.NewUniformMargin(16, body),
		widgets.NewFrame(),
	)
}
