package site

// pageTemplate is the Go html/template for the report page. Both language
// wrappers are rendered into one document and only one is visible.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}"{{if .LiveReload}} data-live-reload{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css?v={{.BuildID}}">
  <script src="{{.ChartJSURL}}"></script>
</head>
<body>
{{- range .Variants}}
  <div id="{{.WrapperID}}" class="wrapper{{if .Hidden}} hidden{{end}}" lang="{{.Lang}}">
    <nav class="sidebar">
      <div class="sidebar-header">
        <h2 class="project-title">{{.Title}}</h2>
        <button class="lang-toggle" type="button" data-lang="{{.SwitchTarget}}">{{.SwitchLabel}}</button>
      </div>
      {{.NavHTML}}
    </nav>
    <main class="content">
      <header class="page-header">
        <h1>{{.Title}}</h1>
        <p class="subtitle">{{.Subtitle}}</p>
      </header>
      {{- range .Sections}}
      <section id="{{.ID}}">
        {{.Content}}
      </section>
      {{- end}}
      <footer class="page-footer">{{.Footer}}</footer>
    </main>
  </div>
{{- end}}
  <script type="application/json" id="chart-specs">{{.SpecsJSON}}</script>
  <script src="script.js?v={{.BuildID}}"></script>
</body>
</html>`

// cssContent is the stylesheet for the report page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #010a13;
  --bg-card: #1e282d;
  --bg-sidebar: #0a1428;
  --text: #a09b8c;
  --text-strong: #f0e6d2;
  --gold: #c8aa6e;
  --accent: #0ac8b9;
  --loss: #ff4e50;
  --success: #2ecc71;
  --border: rgba(255, 255, 255, 0.1);
  --sidebar-width: 260px;
  --content-max-width: 960px;
}

* { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: "Noto Sans KR", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  line-height: 1.7;
}

.hidden { display: none !important; }

/* ============ Sidebar ============ */
.sidebar {
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  padding: 24px 16px;
  overflow-y: auto;
}

.sidebar-header {
  display: flex;
  flex-direction: column;
  gap: 12px;
  margin-bottom: 24px;
}

.project-title {
  margin: 0;
  font-size: 1.05rem;
  color: var(--gold);
  letter-spacing: 0.02em;
}

.lang-toggle {
  align-self: flex-start;
  background: transparent;
  color: var(--accent);
  border: 1px solid var(--accent);
  border-radius: 4px;
  padding: 4px 12px;
  cursor: pointer;
  font: inherit;
  font-size: 0.85rem;
}

.lang-toggle:hover { background: rgba(10, 200, 185, 0.12); }

.nav-links {
  list-style: none;
  margin: 0;
  padding: 0;
}

.nav-links a {
  display: block;
  padding: 6px 10px;
  border-left: 2px solid transparent;
  color: var(--text);
  text-decoration: none;
  transition: color 0.15s, border-color 0.15s;
}

.nav-links a:hover { color: var(--text-strong); }

.nav-links a.active {
  color: var(--gold);
  border-left-color: var(--gold);
}

/* ============ Content ============ */
.content {
  margin-left: var(--sidebar-width);
  padding: 40px 48px 80px;
  max-width: calc(var(--content-max-width) + var(--sidebar-width));
}

.page-header h1 {
  margin: 0 0 4px;
  color: var(--text-strong);
  font-size: 2rem;
}

.subtitle { margin: 0 0 32px; }

section {
  padding: 24px 0;
  border-bottom: 1px solid var(--border);
}

section h2, section h3 { color: var(--text-strong); }
section h2 { color: var(--gold); }

.chart-container {
  position: relative;
  height: 320px;
  margin: 20px 0;
  padding: 16px;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 6px;
}

.table-wrap { overflow-x: auto; }

table {
  border-collapse: collapse;
  width: 100%;
  margin: 16px 0;
}

th, td {
  padding: 8px 12px;
  border: 1px solid var(--border);
  text-align: left;
}

th { color: var(--text-strong); background: var(--bg-card); }

pre {
  padding: 16px;
  border-radius: 6px;
  overflow-x: auto;
  font-size: 0.85rem;
}

code { font-family: "JetBrains Mono", Consolas, monospace; }

.page-footer {
  margin-top: 40px;
  font-size: 0.85rem;
}

@media (max-width: 800px) {
  .sidebar {
    position: static;
    width: auto;
    border-right: none;
    border-bottom: 1px solid var(--border);
  }
  .content {
    margin-left: 0;
    padding: 24px 16px 60px;
  }
}
`

// jsContent is the page runtime: chart initialization, navigation tracking
// and the language switcher.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  // ===== Charts =====
  function readSpecs() {
    var el = document.getElementById("chart-specs");
    if (!el) return null;
    try { return JSON.parse(el.textContent); } catch (e) { return null; }
  }

  function initCharts(bundle) {
    if (!bundle || typeof Chart === "undefined") return;
    Chart.defaults.color = bundle.defaults.color;
    Chart.defaults.borderColor = bundle.defaults.borderColor;
    (bundle.order || []).forEach(function(lang) {
      (bundle.variants[lang] || []).forEach(function(m) {
        var mount = document.getElementById(m.mount);
        if (!mount) return;
        new Chart(mount, m.spec);
      });
    });
  }

  // ===== Navigation =====
  function navLinks() {
    return document.querySelectorAll(".nav-links a");
  }

  function findTarget(href) {
    try { return document.querySelector(href); } catch (e) { return null; }
  }

  function bindAnchors() {
    document.querySelectorAll('a[href^="#"]').forEach(function(anchor) {
      anchor.addEventListener("click", function(e) {
        e.preventDefault();
        var target = findTarget(anchor.getAttribute("href"));
        if (!target) return;
        target.scrollIntoView({ behavior: "smooth" });
        navLinks().forEach(function(link) { link.classList.remove("active"); });
        anchor.classList.add("active");
      });
    });
  }

  function onScroll() {
    var current = "";
    document.querySelectorAll("section").forEach(function(section) {
      var top = section.offsetTop;
      var height = section.clientHeight;
      if (window.pageYOffset >= top - height / 3) {
        current = section.id;
      }
    });
    navLinks().forEach(function(link) {
      link.classList.remove("active");
      if ((link.getAttribute("href") || "").indexOf(current) !== -1) {
        link.classList.add("active");
      }
    });
  }

  // ===== Language switcher =====
  function switchLanguage(target) {
    var lang = target === "en" ? "en" : "ko";
    var show = document.getElementById("wrapper-" + lang);
    var hide = document.getElementById(lang === "en" ? "wrapper-ko" : "wrapper-en");
    if (show) show.classList.remove("hidden");
    if (hide) hide.classList.add("hidden");
    html.setAttribute("lang", lang);
    window.scrollTo(0, 0);
  }

  function bindLanguageButtons() {
    document.querySelectorAll("[data-lang]").forEach(function(button) {
      button.addEventListener("click", function() {
        switchLanguage(button.getAttribute("data-lang"));
      });
    });
  }

  // ===== Live reload =====
  function connectLiveReload() {
    if (!html.hasAttribute("data-live-reload") || typeof WebSocket === "undefined") return;
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws/reload");
    ws.onmessage = function(ev) {
      try {
        if (JSON.parse(ev.data).type === "reload") location.reload();
      } catch (e) {}
    };
  }

  window.switchLanguage = switchLanguage;

  document.addEventListener("DOMContentLoaded", function() {
    initCharts(readSpecs());
    bindAnchors();
    window.addEventListener("scroll", onScroll);
    bindLanguageButtons();
    connectLiveReload();
  });
})();
`
