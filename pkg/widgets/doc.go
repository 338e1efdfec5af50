// Package widgets provides the concrete leaf elements built on the
// element contract: static content such as labels, boxes and spacers,
// and interactive controls such as buttons. Widgets draw themselves from
// the theme carried by the context and report interaction to the
// application as commands posted on the view.
package widgets
