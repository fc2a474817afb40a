package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"github.com/papapumpkin/astronexus/internal/browse"
)

func helpKeys(bs []key.Binding) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Help().Key
	}
	return out
}

func TestSectionFooterBindingsAlwaysEndWithNavigation(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	for _, s := range browse.Sections() {
		t.Run(s.Label(), func(t *testing.T) {
			t.Parallel()
			keys := helpKeys(SectionFooterBindings(s, km, false, false))
			if len(keys) < 3 {
				t.Fatalf("only %d bindings for %s", len(keys), s.Label())
			}
			tail := keys[len(keys)-2:]
			if tail[0] != km.NextTab.Help().Key || tail[1] != km.Quit.Help().Key {
				t.Errorf("bindings for %s end with %v, want next section and quit", s.Label(), tail)
			}
		})
	}
}

func TestSectionFooterBindingsTyping(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	got := helpKeys(SectionFooterBindings(browse.SectionGallery, km, true, true))
	want := []string{"enter", "esc", "tab"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("typing bindings = %v, want %v", got, want)
	}
}

func TestSectionFooterBindingsDetail(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	list := helpKeys(SectionFooterBindings(browse.SectionSolarSystem, km, false, false))
	detail := helpKeys(SectionFooterBindings(browse.SectionSolarSystem, km, true, false))
	if !contains(list, km.Search.Help().Key) {
		t.Errorf("list bindings %v should include search", list)
	}
	if contains(detail, km.Search.Help().Key) {
		t.Errorf("detail bindings %v should not include search", detail)
	}
	if !contains(detail, km.Layer.Help().Key) {
		t.Errorf("detail bindings %v should include layer", detail)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestFooterView(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	bindings := []key.Binding{km.Search, km.Quit}

	wide := Footer{Width: 120, Bindings: bindings}.View()
	if !strings.Contains(wide, "search") || !strings.Contains(wide, "quit") {
		t.Errorf("wide footer should show descriptions:\n%s", wide)
	}

	compact := Footer{Width: CompactWidth - 1, Bindings: bindings}.View()
	if strings.Contains(compact, "search") {
		t.Errorf("compact footer should hide descriptions:\n%s", compact)
	}
	if !strings.Contains(compact, "/") {
		t.Errorf("compact footer should keep keys:\n%s", compact)
	}
}

func TestFooterSkipsDisabledBindings(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	play := km.Play
	play.SetEnabled(false)
	view := Footer{Width: 120, Bindings: []key.Binding{play, km.Quit}}.View()
	if strings.Contains(view, play.Help().Desc) {
		t.Errorf("disabled binding rendered:\n%s", view)
	}
}
