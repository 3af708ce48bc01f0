package overlay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/hintnav/internal/collector"
	"github.com/atomicstack/hintnav/internal/keys"
	"github.com/atomicstack/hintnav/internal/label"
	"github.com/atomicstack/hintnav/internal/logging"
	"github.com/atomicstack/hintnav/internal/testutil"
	"github.com/atomicstack/hintnav/internal/widget"
)

func saveAndRemember() (*testutil.Host, *testutil.Fake, *testutil.Fake) {
	save := testutil.Button("Save")
	remember := testutil.Checkbox("Remember")
	root := testutil.Panel("window", save, remember)
	testutil.Stack(root, 0, 0)
	return testutil.NewHost(root), save, remember
}

func buttons(n int) (*testutil.Host, []*testutil.Fake) {
	kids := make([]*testutil.Fake, n)
	for i := range kids {
		kids[i] = testutil.Button(string(rune('A' + i)))
	}
	root := testutil.Panel("window", kids...)
	testutil.Stack(root, 0, 0)
	return testutil.NewHost(root), kids
}

func TestShowLabelsTargetsInCollectionOrder(t *testing.T) {
	host, _, _ := saveAndRemember()
	o := New(host, label.Default())
	if outcome := o.Show(collector.All); outcome != Pending {
		t.Fatalf("expected pending session, got %s", outcome)
	}
	hints := o.Hints()
	if len(hints) != 2 {
		t.Fatalf("expected 2 hints, got %d", len(hints))
	}
	if hints[0].Label != "a" || hints[0].Target.Widget.ID() != "Save" {
		t.Fatalf("expected Save labelled a, got %#v", hints[0])
	}
	if hints[1].Label != "s" || hints[1].Target.Widget.ID() != "Remember" {
		t.Fatalf("expected Remember labelled s, got %#v", hints[1])
	}
	if got := len(host.LiveMarkers()); got != len(hints) {
		t.Fatalf("expected one marker per hint, got %d markers", got)
	}
}

func TestShowWithoutTargetsStaysIdle(t *testing.T) {
	root := testutil.Panel("window", testutil.Button("Save"))
	testutil.Stack(root, 0, 0)
	host := testutil.NewHost(root)
	o := New(host, nil)
	if outcome := o.Show(collector.Input); outcome != NoTargets {
		t.Fatalf("expected no-targets, got %s", outcome)
	}
	if o.Active() {
		t.Fatalf("expected overlay to stay idle")
	}
	if len(host.Markers) != 0 {
		t.Fatalf("expected no markers, got %d", len(host.Markers))
	}
}

func TestShowReplacesPriorSession(t *testing.T) {
	host, _, _ := saveAndRemember()
	o := New(host, nil)
	o.Show(collector.All)
	first := host.LiveMarkers()
	o.Show(collector.All)
	for _, m := range first {
		if !m.Destroyed {
			t.Fatalf("expected markers from the prior session to be destroyed")
		}
	}
	if got := len(host.LiveMarkers()); got != 2 {
		t.Fatalf("expected 2 live markers, got %d", got)
	}
}

func TestShowPositionsMarkersWindowRelative(t *testing.T) {
	list := testutil.List("files", 7, 8)
	button := testutil.Button("Open")
	root := testutil.Panel("window", button, list)
	testutil.Stack(root, 5, 3)
	host := testutil.NewHost(root)
	o := New(host, nil)
	o.Show(collector.All)

	markers := host.LiveMarkers()
	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}
	// window at 5,3; button at 6,4; list at 6,5 with rows on consecutive lines
	want := []widget.Rect{
		{X: 1, Y: 1, W: 3, H: 1},
		{X: 1, Y: 2, W: 3, H: 1},
		{X: 1, Y: 3, W: 3, H: 1},
	}
	for i, m := range markers {
		if m.At != want[i] {
			t.Fatalf("marker %d: expected %#v, got %#v", i, want[i], m.At)
		}
	}
}

func TestShowSkipsStaleRowsAndFailedMarkers(t *testing.T) {
	list := testutil.List("files", 0, 1, 2)
	list.StaleRows = map[int]bool{1: true}
	root := testutil.Panel("window", list, testutil.Button("Save"))
	testutil.Stack(root, 0, 0)
	host := testutil.NewHost(root)
	host.FailMark = map[string]bool{"d": true}

	o := New(host, nil)
	if outcome := o.Show(collector.All); outcome != Pending {
		t.Fatalf("expected pending, got %s", outcome)
	}
	hints := o.Hints()
	if len(hints) != 2 {
		t.Fatalf("expected stale row and failed marker to be dropped, got %d hints", len(hints))
	}
	if hints[0].Target.Row != 0 || hints[1].Target.Row != 2 {
		t.Fatalf("unexpected targets %#v", hints)
	}
	if len(host.LiveMarkers()) != len(hints) {
		t.Fatalf("expected markers to match hints")
	}
}

func TestHandleKeyExactMatchClicksButton(t *testing.T) {
	host, save, remember := saveAndRemember()
	o := New(host, nil)
	o.Show(collector.All)
	if outcome := o.HandleKey(keys.Rune('a')); outcome != Activated {
		t.Fatalf("expected activation, got %s", outcome)
	}
	if save.Clicks != 1 {
		t.Fatalf("expected one click on Save, got %d", save.Clicks)
	}
	if remember.Changes != 0 {
		t.Fatalf("expected Remember untouched")
	}
	if o.Active() || len(host.LiveMarkers()) != 0 {
		t.Fatalf("expected session torn down after activation")
	}
}

func TestHandleKeyTogglesCheckboxOnce(t *testing.T) {
	host, _, remember := saveAndRemember()
	o := New(host, nil)
	o.Show(collector.All)
	if outcome := o.HandleKey(keys.Rune('S')); outcome != Activated {
		t.Fatalf("expected activation via upper-case key, got %s", outcome)
	}
	if !remember.Value || remember.Changes != 1 {
		t.Fatalf("expected checkbox toggled once, value=%v changes=%d", remember.Value, remember.Changes)
	}
	if o.HandleKey(keys.Rune('s')) != NoMatch {
		t.Fatalf("expected idle overlay to report no-match")
	}
	if remember.Changes != 1 {
		t.Fatalf("expected no further toggles, got %d", remember.Changes)
	}
}

func TestHandleKeyNarrowsThenTearsDown(t *testing.T) {
	host, kids := buttons(4)
	o := New(host, label.Alphabet("asd"))
	o.Show(collector.All)
	labels := make([]string, 0, 4)
	for _, h := range o.Hints() {
		labels = append(labels, h.Label)
	}
	if strings.Join(labels, ",") != "a,s,da,ds" {
		t.Fatalf("unexpected labels %v", labels)
	}

	if outcome := o.HandleKey(keys.Rune('d')); outcome != Pending {
		t.Fatalf("expected pending after prefix, got %s", outcome)
	}
	if got := strings.Join(o.Visible(), ","); got != "da,ds" {
		t.Fatalf("expected visible da,ds, got %q", got)
	}
	if got := strings.Join(host.VisibleTexts(), ","); got != "da,ds" {
		t.Fatalf("expected host markers da,ds visible, got %q", got)
	}
	if o.Input() != "d" {
		t.Fatalf("expected input buffer d, got %q", o.Input())
	}

	if outcome := o.HandleKey(keys.Rune('d')); outcome != NoMatch {
		t.Fatalf("expected no-match for dd, got %s", outcome)
	}
	if o.Active() || len(host.LiveMarkers()) != 0 {
		t.Fatalf("expected teardown after exhausted matches")
	}
	for _, k := range kids {
		if k.Clicks != 0 {
			t.Fatalf("expected no activation, %s clicked", k.Name)
		}
	}
}

func TestHandleKeyPrefixThenActivate(t *testing.T) {
	host, kids := buttons(4)
	o := New(host, label.Alphabet("asd"))
	o.Show(collector.All)
	o.HandleKey(keys.Rune('d'))
	if outcome := o.HandleKey(keys.Rune('s')); outcome != Activated {
		t.Fatalf("expected activation for ds, got %s", outcome)
	}
	if kids[3].Clicks != 1 {
		t.Fatalf("expected fourth button clicked")
	}
}

func TestHandleKeyOutsideAlphabetAborts(t *testing.T) {
	host, _, _ := saveAndRemember()
	o := New(host, nil)
	o.Show(collector.All)
	if outcome := o.HandleKey(keys.Rune('1')); outcome != NoMatch {
		t.Fatalf("expected no-match for digit, got %s", outcome)
	}
	if o.Active() {
		t.Fatalf("expected session ended")
	}

	o.Show(collector.All)
	if outcome := o.HandleKey(keys.Rune('y')); outcome != NoMatch {
		t.Fatalf("expected no-match for letter outside alphabet, got %s", outcome)
	}
}

func TestHandleKeyEscapeCancels(t *testing.T) {
	host, save, _ := saveAndRemember()
	o := New(host, nil)
	o.Show(collector.All)
	if outcome := o.HandleKey(keys.Escape); outcome != Cancelled {
		t.Fatalf("expected cancelled, got %s", outcome)
	}
	if save.Clicks != 0 || len(host.LiveMarkers()) != 0 {
		t.Fatalf("expected cancel without activation")
	}
}

func TestHideIsIdempotent(t *testing.T) {
	host, _, _ := saveAndRemember()
	o := New(host, nil)
	o.Hide()
	if o.Active() || o.Input() != "" || len(o.Hints()) != 0 {
		t.Fatalf("expected idle state after hide on idle overlay")
	}
	o.Show(collector.All)
	o.Hide()
	o.Hide()
	if o.Active() || len(host.LiveMarkers()) != 0 {
		t.Fatalf("expected clean teardown after repeated hide")
	}
}

func TestHintsAndMarkersStayInStep(t *testing.T) {
	host, _ := buttons(20)
	o := New(host, nil)
	o.Show(collector.All)
	if len(o.Hints()) != 20 || len(host.LiveMarkers()) != 20 {
		t.Fatalf("expected 20 hints and markers, got %d/%d", len(o.Hints()), len(host.LiveMarkers()))
	}
	labels := make([]string, 0, 20)
	for _, h := range o.Hints() {
		labels = append(labels, h.Label)
	}
	if !label.PrefixFree(labels) {
		t.Fatalf("expected prefix-free labels, got %v", labels)
	}
}

func TestActivatePolicy(t *testing.T) {
	radio := testutil.Radio("small")
	text := testutil.TextBox("name")
	choice := testutil.Choice("theme")
	list := testutil.List("files", 4, 5)
	root := testutil.Panel("window", radio, text, choice, list)
	testutil.Stack(root, 0, 0)
	host := testutil.NewHost(root)

	if err := Activate(host, collector.WidgetTarget(radio)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !radio.Value || radio.Selects != 1 {
		t.Fatalf("expected radio selected and notified")
	}

	if err := Activate(host, collector.WidgetTarget(text)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host.Focus != widget.Widget(text) {
		t.Fatalf("expected focus on text entry")
	}

	if err := Activate(host, collector.WidgetTarget(choice)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host.Focus != widget.Widget(choice) {
		t.Fatalf("expected focus on choice")
	}

	if err := Activate(host, collector.RowTarget(list, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.SelectedRow != 5 || host.Focus != widget.Widget(list) {
		t.Fatalf("expected row 5 selected and list focused")
	}
	if len(list.Activated) != 1 || list.Activated[0] != 5 {
		t.Fatalf("expected row activation for 5, got %v", list.Activated)
	}
}

func TestActivateStaleTargetFailsClosed(t *testing.T) {
	host, save, _ := saveAndRemember()
	o := New(host, nil)
	o.Show(collector.All)
	save.Destroyed = true
	if outcome := o.HandleKey(keys.Rune('a')); outcome != Activated {
		t.Fatalf("expected session to end as activated, got %s", outcome)
	}
	if save.Clicks != 0 {
		t.Fatalf("expected no click on destroyed widget")
	}
	if o.Active() {
		t.Fatalf("expected session torn down")
	}
}

func TestActivateStaleTargetIsTraced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})

	host, save, _ := saveAndRemember()
	o := New(host, nil)
	o.Show(collector.All)
	save.Destroyed = true
	o.HandleKey(keys.Rune('a'))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file: %v", err)
	}
	if !strings.Contains(string(data), `"event":"hint.stale"`) {
		t.Fatalf("expected stale trace entry, got %q", string(data))
	}
}
