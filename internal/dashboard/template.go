package dashboard

// pageHTML is the dashboard document. Controls submit a plain GET so every
// interaction is one stateless render pass; the hidden "applied" marker tells
// the server a submitted form with no boxes checked means "no types", not
// "default to all types". The orbit selector lives in the main column but
// belongs to the sidebar form via the form attribute.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Asteroid Mining Mission Planner (MVP)</title>
<script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
<style>
body{margin:0;display:flex;font-family:system-ui,sans-serif;color:#1c2128;background:#fafbfc}
aside{width:260px;flex-shrink:0;padding:18px;background:#f0f2f5;border-right:1px solid #d5d9de;min-height:100vh}
aside h2{font-size:16px;margin-top:0}
aside fieldset{border:1px solid #d5d9de;border-radius:4px;margin-bottom:14px}
aside label{display:block;font-size:13px;margin:10px 0 4px}
aside input[type=range]{width:100%}
aside output{font-weight:600}
aside button{margin-top:12px;padding:6px 16px;border:1px solid #b6bcc4;border-radius:4px;background:#fff;cursor:pointer}
main{flex:1;padding:22px 30px;max-width:1100px}
main h1{font-size:24px;margin-bottom:2px}
.caption{color:#6a737d;font-size:13px;margin-top:0}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:18px}
th,td{text-align:left;padding:6px 10px;border-bottom:1px solid #e1e4e8}
th{color:#6a737d;font-weight:600;font-size:12px;text-transform:uppercase}
td.num{font-variant-numeric:tabular-nums}
.metrics{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:18px}
.metric{background:#fff;border:1px solid #e1e4e8;border-radius:6px;padding:10px 16px;min-width:140px}
.metric .label{font-size:12px;color:#6a737d}
.metric .value{font-size:22px;font-weight:700}
.metric .band{font-size:12px;color:#2a7a3b}
.orbit-picker{margin:14px 0;font-size:14px}
.orbit-picker select{padding:4px 8px}
.empty{background:#e8f1fb;border:1px solid #b7d4f3;border-radius:6px;padding:14px 18px;color:#2b5d8f}
</style>
</head>
<body>
<aside>
  <h2>Filters</h2>
  <form id="filters" method="get" action="/">
    <input type="hidden" name="applied" value="1">
    <fieldset>
      <legend>Spectral Type</legend>
      {{range .AllTypes}}<label><input type="checkbox" name="type" value="{{.}}"{{if $.Criteria.Accepts .}} checked{{end}}> {{.}}</label>
      {{end}}
    </fieldset>
    <label for="min_diameter">Min Diameter (km): <output id="diam-out">{{.Criteria.MinDiameterKm}}</output></label>
    <input type="range" id="min_diameter" name="min_diameter" min="{{.Bounds.DiamFloor}}" max="{{.Bounds.DiamCeil}}" step="0.1"
           value="{{.Criteria.MinDiameterKm}}" oninput="document.getElementById('diam-out').value=this.value">
    <label for="min_value">Min Est. Value (billion USD): <output id="value-out">{{.Criteria.MinValue.String}}</output></label>
    <input type="range" id="min_value" name="min_value" min="{{.Bounds.ValueFloor}}" max="{{.Bounds.ValueCeil}}" step="0.1"
           value="{{.Criteria.MinValue.String}}" oninput="document.getElementById('value-out').value=this.value">
    <label for="max_dv">Max Delta-V to reach (km/s): <output id="dv-out">{{.Criteria.MaxDeltaV}}</output></label>
    <input type="range" id="max_dv" name="max_dv" min="{{.Bounds.DvFloor}}" max="{{.Bounds.DvCeil}}" step="0.1"
           value="{{.Criteria.MaxDeltaV}}" oninput="document.getElementById('dv-out').value=this.value">
    <button type="submit">Apply filters</button>
  </form>
</aside>
<main>
  <h1>Asteroid Mining Mission Planner (MVP)</h1>
  <p class="caption">Filter main-belt / NEO asteroids &bull; Rough value estimates &bull; Basic orbit view</p>
  <h2>Filtered Asteroids ({{len .Filtered}} found)</h2>
{{if .Filtered}}
  <table>
    <thead>
      <tr><th>Name</th><th>Diameter (km)</th><th>Est. Value (B$)</th><th>Delta-V (km/s)</th><th>Spectral Type</th></tr>
    </thead>
    <tbody>
      {{range .Filtered}}<tr>
        <td>{{.Name}}</td>
        <td class="num">{{.DiameterKm}}</td>
        <td class="num">{{.EstimatedValue.String}}</td>
        <td class="num">{{.DeltaVKmPerSec}}</td>
        <td>{{.SpectralType}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <h2>Profit Estimates (rough)</h2>
  <div class="metrics">
    {{range .Metrics}}<div class="metric">
      <div class="label">{{.Label}}</div>
      <div class="value">{{.Value}}</div>
      <div class="band">{{.Band}}</div>
    </div>
    {{end}}
  </div>
  <h2>Orbital Positions (selected asteroids)</h2>
  {{.Scatter}}
  <div class="orbit-picker">
    <label for="orbit">Plot orbit for:</label>
    <select id="orbit" name="orbit" form="filters" onchange="this.form.submit()">
      {{range .Filtered}}<option value="{{.Name}}"{{if eq .Name $.Selected}} selected{{end}}>{{.Name}}</option>
      {{end}}
    </select>
  </div>
  {{.Orbit}}
{{else}}
  <p class="empty">No asteroids match your filters.</p>
{{end}}
</main>
</body>
</html>
`
