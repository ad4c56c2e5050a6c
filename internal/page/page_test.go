package page

import (
	"testing"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/dom"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
)

const pageFixture = `<!DOCTYPE html>
<html lang="en">
<body>
  <button data-lang="en">English</button>
  <button data-lang="ko">한국어</button>
  <div id="wrapper-en">
    <ul class="nav-links">
      <li><a href="#overview" class="active">Overview</a></li>
      <li><a href="#eda">EDA</a></li>
      <li><a href="#models">Models</a></li>
      <li><a href="#missing">Broken</a></li>
    </ul>
    <section id="overview"></section>
    <section id="eda"><canvas id="fbChart"></canvas><canvas id="kdaChart"></canvas></section>
    <section id="models"><canvas id="featLRChart"></canvas></section>
  </div>
  <div id="wrapper-ko" class="hidden">
    <section id="ko-eda"><canvas id="ko-fbChart"></canvas></section>
  </div>
</body>
</html>`

func loadFixture(t *testing.T) *dom.MemoryDocument {
	t.Helper()
	doc, err := dom.ParseString(pageFixture)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	doc.SetGeometry("overview", dom.Geometry{Top: 0, Height: 600})
	doc.SetGeometry("eda", dom.Geometry{Top: 600, Height: 900})
	doc.SetGeometry("models", dom.Geometry{Top: 1500, Height: 600})
	return doc
}

func activeLinks(doc dom.Document) []string {
	var out []string
	for _, l := range doc.QuerySelectorAll(NavLinkSelector) {
		if l.ClassList().Contains(ActiveClass) {
			out = append(out, l.Attr("href"))
		}
	}
	return out
}

func TestActiveSection(t *testing.T) {
	sections := []SectionGeometry{
		{ID: "overview", Top: 0, Height: 600},
		{ID: "eda", Top: 600, Height: 900},
		{ID: "models", Top: 1500, Height: 600},
	}
	tests := []struct {
		y    float64
		want string
	}{
		{0, "overview"},
		{299, "overview"},
		{300, "eda"},
		{1299, "eda"},
		{1300, "models"},
		{99999, "models"},
	}
	for _, tt := range tests {
		got := ActiveSection(sections, tt.y)
		if got != tt.want {
			t.Errorf("ActiveSection(y=%v) = %q, want %q", tt.y, got, tt.want)
		}
		if again := ActiveSection(sections, tt.y); again != got {
			t.Errorf("ActiveSection not deterministic at y=%v", tt.y)
		}
	}
}

func TestActiveSectionLaterWins(t *testing.T) {
	// Two sections with the same threshold: the later one is current.
	sections := []SectionGeometry{
		{ID: "a", Top: 300, Height: 0},
		{ID: "b", Top: 300, Height: 0},
	}
	if got := ActiveSection(sections, 300); got != "b" {
		t.Errorf("got %q, want b", got)
	}
	if got := ActiveSection(sections, 10); got != "" {
		t.Errorf("nothing passed yet, got %q", got)
	}
}

func TestInitializeChartsSkipsMissingMounts(t *testing.T) {
	doc := loadFixture(t)
	engine := &RecordingEngine{}

	n, err := InitializeCharts(doc, engine, charts.NewBuilder(i18n.English, palette.Default()))
	if err != nil {
		t.Fatalf("InitializeCharts: %v", err)
	}
	if n != 3 {
		t.Fatalf("created %d charts, want 3", n)
	}
	want := []string{"fbChart", "featLRChart", "kdaChart"}
	for i, id := range want {
		if engine.Instances[i].MountID != id {
			t.Errorf("instance[%d] = %q, want %q", i, engine.Instances[i].MountID, id)
		}
	}
}

func TestInitializeAllUsesVariantText(t *testing.T) {
	doc := loadFixture(t)
	engine := &RecordingEngine{}
	n, err := InitializeAll(doc, engine, palette.Default())
	if err != nil {
		t.Fatalf("InitializeAll: %v", err)
	}
	if n != 4 {
		t.Fatalf("created %d charts, want 4", n)
	}
	last := engine.Instances[n-1]
	if last.MountID != "ko-fbChart" {
		t.Fatalf("last instance = %q", last.MountID)
	}
	if last.Spec.Data.Labels[1] != "퍼스트 블러드 획득" {
		t.Errorf("korean chart label = %q", last.Spec.Data.Labels[1])
	}
}

func TestClickActivatesOnlyClickedLink(t *testing.T) {
	doc := loadFixture(t)
	rt, err := Boot(doc, doc.Window(), &RecordingEngine{}, palette.Default())
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}

	link, _ := doc.QuerySelector(`a[href="#models"]`)
	ev := rt.Dispatch(EventClick, link)
	if !ev.DefaultPrevented() {
		t.Error("click should prevent default navigation")
	}
	got := activeLinks(doc)
	if len(got) != 1 || got[0] != "#models" {
		t.Errorf("active links = %v, want [#models]", got)
	}
	if doc.Window().ScrollY() != 1500 {
		t.Errorf("scrollY = %v, want 1500", doc.Window().ScrollY())
	}
	hist := doc.Window().History
	if len(hist) == 0 || !hist[len(hist)-1].Smooth {
		t.Error("click should scroll smoothly")
	}
}

func TestClickDanglingFragmentIsNoop(t *testing.T) {
	doc := loadFixture(t)
	tr := NewTracker(doc, doc.Window())

	link, _ := doc.QuerySelector(`a[href="#missing"]`)
	tr.Click(link)

	got := activeLinks(doc)
	if len(got) != 1 || got[0] != "#overview" {
		t.Errorf("active links changed on dangling click: %v", got)
	}
	if len(doc.Window().History) != 0 {
		t.Error("dangling click should not scroll")
	}
}

func TestScrollSyncsActiveLink(t *testing.T) {
	doc := loadFixture(t)
	rt, err := Boot(doc, doc.Window(), &RecordingEngine{}, palette.Default())
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	// A hidden section has no layout in a browser, so its threshold is 0
	// and it would qualify everywhere. Park it below the english sections.
	doc.SetGeometry("ko-eda", dom.Geometry{Top: 10000, Height: 0})

	doc.Window().Y = 700
	rt.Dispatch(EventScroll, nil)

	got := activeLinks(doc)
	if len(got) != 1 || got[0] != "#eda" {
		t.Errorf("active links = %v, want [#eda]", got)
	}
}

func TestScrollSubstringMatch(t *testing.T) {
	doc, _ := dom.ParseString(`<html><body>
<nav class="nav-links"><a href="#eda">a</a><a href="#eda-kda">b</a><a href="#models">c</a></nav>
<section id="eda"></section></body></html>`)
	doc.SetGeometry("eda", dom.Geometry{Top: 0, Height: 300})
	tr := NewTracker(doc, doc.Window())

	if got := tr.Scroll(); got != "eda" {
		t.Fatalf("current = %q, want eda", got)
	}
	got := activeLinks(doc)
	if len(got) != 2 {
		t.Errorf("both links containing 'eda' should be active, got %v", got)
	}
}

func TestSwitchLanguage(t *testing.T) {
	tests := []struct {
		target   string
		wantLang string
		visible  string
		hidden   string
	}{
		{"ko", "ko", "wrapper-ko", "wrapper-en"},
		{"en", "en", "wrapper-en", "wrapper-ko"},
		{"fr", "ko", "wrapper-ko", "wrapper-en"},
	}
	for _, tt := range tests {
		doc := loadFixture(t)
		doc.Window().Y = 1234
		sw := NewSwitcher(doc, doc.Window())

		// Applying twice must land in the same state.
		sw.Switch(tt.target)
		sw.Switch(tt.target)

		vis, _ := doc.GetElementByID(tt.visible)
		hid, _ := doc.GetElementByID(tt.hidden)
		if vis.ClassList().Contains(HiddenClass) {
			t.Errorf("%s: %s should be visible", tt.target, tt.visible)
		}
		if !hid.ClassList().Contains(HiddenClass) {
			t.Errorf("%s: %s should be hidden", tt.target, tt.hidden)
		}
		if got := doc.DocumentElement().Attr("lang"); got != tt.wantLang {
			t.Errorf("%s: lang = %q, want %q", tt.target, got, tt.wantLang)
		}
		if doc.Window().ScrollY() != 0 {
			t.Errorf("%s: scroll not reset", tt.target)
		}
	}
}

func TestLanguageButtons(t *testing.T) {
	doc := loadFixture(t)
	rt, err := Boot(doc, doc.Window(), &RecordingEngine{}, palette.Default())
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	btn, _ := doc.QuerySelector(`[data-lang="ko"]`)
	rt.Dispatch(EventClick, btn)
	if got := doc.DocumentElement().Attr("lang"); got != "ko" {
		t.Errorf("lang = %q after clicking korean toggle", got)
	}
}

func TestRegistrations(t *testing.T) {
	doc := loadFixture(t)
	rt, err := Boot(doc, doc.Window(), &RecordingEngine{}, palette.Default())
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	var clicks, scrolls int
	for _, r := range rt.Registrations() {
		switch r.Event {
		case EventClick:
			clicks++
		case EventScroll:
			scrolls++
		}
	}
	// 4 fragment anchors + 2 language buttons.
	if clicks != 6 {
		t.Errorf("click registrations = %d, want 6", clicks)
	}
	if scrolls != 1 {
		t.Errorf("scroll registrations = %d, want 1", scrolls)
	}
	if rt.Charts() != 4 {
		t.Errorf("charts = %d, want 4", rt.Charts())
	}
}
