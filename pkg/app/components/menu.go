package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/locale"
)

type Action int

const (
	ActionAdd Action = iota + 1
	ActionBorrow
	ActionReturn
	ActionListAll
	ActionListAvailable
	ActionQuit
)

// MenuSize is the number of menu choices.
const MenuSize = int(ActionQuit)

// ParseChoice maps a menu selection ("1".."6") to its action.
func ParseChoice(s string) (Action, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(ActionAdd) || n > int(ActionQuit) {
		return 0, false
	}
	return Action(n), true
}

func (a Action) Label(msgs locale.Messages) string {
	switch a {
	case ActionAdd:
		return msgs.MenuAdd
	case ActionBorrow:
		return msgs.MenuBorrow
	case ActionReturn:
		return msgs.MenuReturn
	case ActionListAll:
		return msgs.MenuListAll
	case ActionListAvailable:
		return msgs.MenuListAvail
	case ActionQuit:
		return msgs.MenuQuit
	default:
		return ""
	}
}

// RenderMenu draws the titled list of numbered choices.
func RenderMenu(msgs locale.Messages) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("=== " + msgs.MenuTitle + " ==="))
	b.WriteString("\n")
	for a := ActionAdd; a <= ActionQuit; a++ {
		key := styles.MenuKeyStyle.Render(fmt.Sprintf("%d.", a))
		b.WriteString(fmt.Sprintf("%s %s\n", key, styles.MenuItemStyle.Render(a.Label(msgs))))
	}
	return b.String()
}
