package view_test

import (
	"fmt"

	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/view"
	"github.com/mkaudio-company/mkgraphic/pkg/widgets"
)

func Example() {
	v, err := view.New(graphics.Extent{Width: 200, Height: 100})
	if err != nil {
		fmt.Println(err)
		return
	}
	v.SetCommandSink(func(cmd element.Command) {
		if click, ok := cmd.(widgets.ClickCommand); ok {
			fmt.Println("clicked", click.ID)
		}
	})
	v.SetContent(element.NewCenter(widgets.NewButton("ok", "OK")))

	center := v.Bounds().Center()
	v.Click(element.MouseEvent{Down: true, Button: element.ButtonLeft, Pos: center})
	v.Click(element.MouseEvent{Button: element.ButtonLeft, Pos: center})

	// Output:
	// clicked ok
}
