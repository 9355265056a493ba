package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// generateHTML creates a self-contained page: every attribute pre-rendered
// as a marker overlay, one base map per tile source, step buttons, a range
// slider and a base map selector.
func generateHTML(ds *Dataset, cfg Config) (string, error) { // NOSONAR
	session, err := newMapSession(ds, cfg, 0)
	if err != nil {
		return "", err
	}
	view := session.scene.view
	active := session.scene.BaseLayer().Name

	bases := make([]string, len(baseLayers))
	for i, b := range baseLayers {
		bases[i] = session.scene.RenderBase(b)
	}
	session.scene.RemoveControl(layersControlID)
	frames, err := renderOverlayFrames(session)
	if err != nil {
		return "", fmt.Errorf("render frames: %w", err)
	}
	attributes := session.state.Attributes

	var htmlBuilder strings.Builder

	// --- Basic HTML Structure ---
	htmlBuilder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<title>City GDP</title>\n")
	htmlBuilder.WriteString("<style>\n")
	fmt.Fprintf(&htmlBuilder, "body { margin: 0; padding: 20px; font-family: %s; font-size: 13px; }\n", escapeCSS(defaultFont))
	fmt.Fprintf(&htmlBuilder, "#map { position: relative; width: %.0fpx; height: %.0fpx; border: 1px solid #ccc; }\n", view.Width, view.Height)
	htmlBuilder.WriteString(`
        .base, .frame { position: absolute; left: 0; top: 0; }
        .hidden { display: none; }
        #panel { margin-top: 10px; display: flex; gap: 8px; align-items: center; }
        #panel .range-slider { width: 300px; }
        #period { font-weight: bold; min-width: 60px; }
    `)
	htmlBuilder.WriteString("\n</style>\n</head>\n<body>\n")

	// --- Base map selector ---
	htmlBuilder.WriteString("<label>Base map <select id=\"base-select\">\n")
	for _, b := range baseLayers {
		fmt.Fprintf(&htmlBuilder, "  <option value=\"%s\"%s>%s</option>\n",
			escapeHTML(b.Name), ternary(b.Name == active, " selected", ""), escapeHTML(b.Name))
	}
	htmlBuilder.WriteString("</select></label>\n")

	// --- Map stack ---
	htmlBuilder.WriteString("<div id=\"map\">\n")
	for i, b := range baseLayers {
		fmt.Fprintf(&htmlBuilder, "<div class=\"base%s\" data-base=\"%s\">\n%s\n</div>\n",
			ternary(b.Name == active, "", " hidden"), escapeHTML(b.Name), bases[i])
	}
	for i, frame := range frames {
		fmt.Fprintf(&htmlBuilder, "<div class=\"frame%s\" data-index=\"%d\">\n%s\n</div>\n",
			ternary(i == 0, "", " hidden"), i, frame)
	}
	htmlBuilder.WriteString("</div>\n")

	// --- Sequence controls ---
	htmlBuilder.WriteString("<div id=\"panel\">\n")
	htmlBuilder.WriteString("  <button class=\"step\" id=\"reverse\" title=\"Previous period\">&#9664;</button>\n")
	fmt.Fprintf(&htmlBuilder, "  <input class=\"range-slider\" type=\"range\" min=\"0\" max=\"%d\" value=\"0\" step=\"1\">\n", len(attributes)-1)
	htmlBuilder.WriteString("  <button class=\"step\" id=\"forward\" title=\"Next period\">&#9654;</button>\n")
	fmt.Fprintf(&htmlBuilder, "  <span id=\"period\">%s</span>\n", escapeHTML(legendYear(attributes[0])))
	htmlBuilder.WriteString("</div>\n")

	// --- Client-side frame switching ---
	htmlBuilder.WriteString("<script>\n")
	htmlBuilder.WriteString("const periods = [")
	for i, a := range attributes {
		fmt.Fprintf(&htmlBuilder, "%s\"%s\"", ternary(i == 0, "", ", "), jsString(legendYear(a)))
	}
	htmlBuilder.WriteString("];\n")
	htmlBuilder.WriteString(`const slider = document.querySelector('.range-slider');
function show(index) {
  document.querySelectorAll('.frame').forEach(function (f) {
    f.classList.toggle('hidden', Number(f.dataset.index) !== index);
  });
  slider.value = index;
  document.getElementById('period').textContent = periods[index];
}
document.querySelectorAll('.step').forEach(function (step) {
  step.addEventListener('click', function () {
    var n = periods.length;
    var index = Number(slider.value);
    index = step.id === 'forward' ? (index + 1) % n : (index - 1 + n) % n;
    show(index);
  });
});
slider.addEventListener('input', function () { show(Number(this.value)); });
document.getElementById('base-select').addEventListener('change', function () {
  var name = this.value;
  document.querySelectorAll('.base').forEach(function (b) {
    b.classList.toggle('hidden', b.dataset.base !== name);
  });
});
`)
	htmlBuilder.WriteString("</script>\n")
	htmlBuilder.WriteString("</body>\n</html>")

	log.Printf("HTML page holds %d frames and %d base maps", len(frames), len(bases))
	return htmlBuilder.String(), nil
}

// jsString escapes s for a double-quoted JavaScript string inside a <script> block.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "<", `\u003c`)
	return r.Replace(s)
}
