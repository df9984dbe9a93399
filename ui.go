package main

import "html/template"

var (
	uploadTmpl    = template.Must(template.New("upload").Parse(uploadHTML))
	dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))
)

const uploadHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Chatlens</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#0a0a0a;color:#e1e1e1;min-height:100vh;display:flex;align-items:center;justify-content:center}
.card{background:#111;border:1px solid #1a1a1a;border-radius:12px;padding:36px;width:440px}
h1{font-size:20px;font-weight:600;color:#25D366;margin-bottom:6px}
p.sub{font-size:13px;color:#777;margin-bottom:24px}
.drop{border:2px dashed #2a2a2a;border-radius:10px;padding:28px;text-align:center;font-size:13px;color:#999;cursor:pointer;transition:border-color .15s}
.drop:hover{border-color:#25D366}
.drop.picked{border-color:#25D366;color:#e1e1e1}
input[type=file]{display:none}
button{width:100%;margin-top:18px;padding:12px;border:none;border-radius:8px;background:#25D366;color:#000;font-size:14px;font-weight:600;cursor:pointer}
button:disabled{background:#1e3a2a;color:#446;cursor:not-allowed}
.error{margin-top:14px;padding:10px 14px;background:#2a1212;border:1px solid #5a2020;border-radius:8px;color:#f87171;font-size:13px}
</style>
</head>
<body>
<div class="card">
  <h1>Chatlens</h1>
  <p class="sub">Upload an exported chat transcript to view its analytics.</p>
  <form id="form" method="POST" action="/upload" enctype="multipart/form-data">
    <label class="drop" id="drop" for="file">Choose a chat export (.txt)</label>
    <input type="file" id="file" name="file" accept=".txt,text/plain">
    <button type="submit" id="submit" disabled>Analyze</button>
  </form>
  {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
</div>
<script>
const fileInput = document.getElementById("file");
const drop = document.getElementById("drop");
const submit = document.getElementById("submit");

// Submit stays disabled until a file is picked, and is disabled again while
// the upload is in flight so a double click cannot fire two requests.
fileInput.addEventListener("change", () => {
  if (fileInput.files.length) {
    drop.textContent = fileInput.files[0].name;
    drop.classList.add("picked");
    submit.disabled = false;
  } else {
    drop.textContent = "Choose a chat export (.txt)";
    drop.classList.remove("picked");
    submit.disabled = true;
  }
});
document.getElementById("form").addEventListener("submit", () => {
  submit.disabled = true;
  submit.textContent = "Uploading...";
});
</script>
</body>
</html>`

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Chatlens — {{.Filename}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#0a0a0a;color:#e1e1e1}
header{padding:16px 24px;border-bottom:1px solid #1a1a1a;background:#111;display:flex;align-items:center;justify-content:space-between}
header h1{font-size:16px;font-weight:600;color:#25D366}
header span{font-size:12px;color:#666;margin-left:10px}
header a.qr{font-size:12px;color:#25D366;text-decoration:none}
.tabs{display:flex;gap:4px;padding:12px 24px;border-bottom:1px solid #1a1a1a}
.tabs a{padding:8px 16px;border-radius:8px;font-size:13px;color:#999;text-decoration:none}
.tabs a:hover{background:#1a1a1a}
.tabs a.active{background:#1a2a1a;color:#25D366;font-weight:600}
main{padding:24px;max-width:1100px;margin:0 auto}
.error{padding:12px 16px;background:#2a1212;border:1px solid #5a2020;border-radius:8px;color:#f87171;font-size:13px;margin-bottom:20px}
.cards{display:grid;grid-template-columns:repeat(auto-fill,minmax(200px,1fr));gap:12px;margin-bottom:28px}
.stat{background:#111;border:1px solid #1a1a1a;border-radius:10px;padding:16px}
.stat .label{font-size:11px;color:#777;text-transform:uppercase;letter-spacing:.05em;margin-bottom:6px}
.stat .value{font-size:20px;font-weight:600}
h2{font-size:14px;font-weight:600;margin:18px 0 10px;color:#ccc}
table{width:100%;border-collapse:collapse;font-size:13px}
th,td{text-align:left;padding:8px 12px;border-bottom:1px solid #1a1a1a}
th{color:#777;font-weight:500;font-size:11px;text-transform:uppercase}
.badge{display:inline-block;background:#1a2a1a;color:#25D366;font-size:12px;padding:5px 12px;border-radius:12px;margin-bottom:16px}
.charts{display:grid;grid-template-columns:repeat(auto-fit,minmax(320px,1fr));gap:16px}
.chart{background:#111;border:1px solid #1a1a1a;border-radius:10px;padding:16px}
.chart h3{font-size:12px;color:#999;margin-bottom:10px}
.person{margin-top:24px}
.person h2{color:#25D366}
.gran{margin-bottom:16px;font-size:12px}
.gran a{color:#999;text-decoration:none;padding:5px 12px;border-radius:8px}
.gran a.active{background:#1a2a1a;color:#25D366}
.viz{background:#111;border:1px solid #1a1a1a;border-radius:10px;padding:20px;text-align:center}
.viz img{max-width:100%;border-radius:6px}
.viz h3{font-size:13px;color:#ccc;margin-bottom:14px}
.pager{display:flex;align-items:center;justify-content:center;gap:16px;margin-top:16px;font-size:13px}
.pager a{padding:7px 16px;border-radius:8px;background:#1a1a1a;color:#e1e1e1;text-decoration:none}
.pager span.disabled{padding:7px 16px;border-radius:8px;background:#141414;color:#444}
.pager .count{color:#777}
.empty{padding:40px;text-align:center;color:#555;font-size:14px}
</style>
</head>
<body>
<header>
  <div><h1>Chatlens</h1><span>{{.Filename}} &middot; uploaded {{.UploadedAgo}} ago</span></div>
  <a class="qr" href="{{.QRLink}}" target="_blank">Open on phone</a>
</header>
<div class="tabs">
  <a href="/dashboard?session_id={{.SessionID}}&tab=summary" {{if eq .Tab "summary"}}class="active"{{end}}>Summary</a>
  <a href="/dashboard?session_id={{.SessionID}}&tab=activity" {{if eq .Tab "activity"}}class="active"{{end}}>Activity</a>
  <a href="/dashboard?session_id={{.SessionID}}&tab=timeline" {{if eq .Tab "timeline"}}class="active"{{end}}>Timeline</a>
  <a href="/dashboard?session_id={{.SessionID}}&tab=visualizations" {{if eq .Tab "visualizations"}}class="active"{{end}}>Visualizations</a>
</div>
<main>
{{if .Err}}<div class="error">{{.Err}}</div>{{end}}

{{if eq .Tab "summary"}}
  {{if .Cards}}
  <div class="cards">
    {{range .Cards}}<div class="stat"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>{{end}}
  </div>
  <h2>Top Senders</h2>
  <table>
    <tr><th>Sender</th><th>Messages</th></tr>
    {{range .Senders}}<tr><td>{{.Name}}</td><td>{{.Count}}</td></tr>{{end}}
  </table>
  {{else if not .Err}}<div class="empty">No summary available</div>{{end}}
{{end}}

{{if eq .Tab "activity"}}
  {{if .PeakBadge}}<div class="badge">{{.PeakBadge}}</div>{{end}}
  <div class="charts">
    {{range .OverallCharts}}
    <div class="chart"><h3>{{.Title}}</h3><canvas id="chart-{{.ID}}"></canvas><script>bar("chart-{{.ID}}", {{.Series}});</script></div>
    {{end}}
  </div>
  {{range .PersonActivity}}
  <div class="person">
    <h2>{{.Person}}</h2>
    <div class="charts">
      {{range .Charts}}
      <div class="chart"><h3>{{.Title}}</h3><canvas id="chart-{{.ID}}"></canvas><script>bar("chart-{{.ID}}", {{.Series}});</script></div>
      {{end}}
    </div>
  </div>
  {{end}}
  {{if and (not .OverallCharts) (not .Err)}}<div class="empty">No activity data available</div>{{end}}
{{end}}

{{if eq .Tab "timeline"}}
  <div class="gran">
    <a href="/dashboard?session_id={{.SessionID}}&tab=timeline&granularity=daily" {{if eq .Granularity "daily"}}class="active"{{end}}>Daily</a>
    <a href="/dashboard?session_id={{.SessionID}}&tab=timeline&granularity=weekly" {{if eq .Granularity "weekly"}}class="active"{{end}}>Weekly</a>
    <a href="/dashboard?session_id={{.SessionID}}&tab=timeline&granularity=monthly" {{if eq .Granularity "monthly"}}class="active"{{end}}>Monthly</a>
  </div>
  {{if .TimelineSeries}}
  <div class="chart"><h3>Messages over time</h3><canvas id="chart-timeline"></canvas><script>line("chart-timeline", {{.TimelineSeries}});</script></div>
  <div class="chart" style="margin-top:16px"><h3>Per person</h3><canvas id="chart-timeline-person"></canvas><script>personLines("chart-timeline-person", {{.PersonTimeline}});</script></div>
  {{else if not .Err}}<div class="empty">No timeline data available</div>{{end}}
{{end}}

{{if eq .Tab "visualizations"}}
  {{if .Pager.Item}}
  <div class="viz">
    <h3>{{.Pager.Item.Title}}</h3>
    <img src="{{.Pager.Item.DataURI}}" alt="{{.Pager.Item.Title}}">
  </div>
  <div class="pager">
    {{if .Pager.HasPrev}}<a href="/dashboard?session_id={{.SessionID}}&tab=visualizations&page={{.Pager.Prev}}">Previous</a>{{else}}<span class="disabled">Previous</span>{{end}}
    <span class="count">{{.Pager.Current}} / {{.Pager.Total}}</span>
    {{if .Pager.HasNext}}<a href="/dashboard?session_id={{.SessionID}}&tab=visualizations&page={{.Pager.Next}}">Next</a>{{else}}<span class="disabled">Next</span>{{end}}
  </div>
  {{else if not .Err}}<div class="empty">No rendered charts available</div>{{end}}
{{end}}
</main>
<script>
const GRID = "#1a1a1a", TICK = "#777", GREEN = "#25D366";

function bar(id, series) {
  const el = document.getElementById(id);
  if (!el) return;
  new Chart(el, {
    type: "bar",
    data: {
      labels: series.map(p => p.label),
      datasets: [{data: series.map(p => p.count), backgroundColor: GREEN}]
    },
    options: {
      plugins: {legend: {display: false}},
      scales: {
        x: {grid: {color: GRID}, ticks: {color: TICK}},
        y: {grid: {color: GRID}, ticks: {color: TICK}, beginAtZero: true}
      }
    }
  });
}

function line(id, series) {
  const el = document.getElementById(id);
  if (!el) return;
  new Chart(el, {
    type: "line",
    data: {
      labels: series.map(p => p.date),
      datasets: [{data: series.map(p => p.count), borderColor: GREEN, backgroundColor: "rgba(37,211,102,.15)", fill: true, tension: .25, pointRadius: 0}]
    },
    options: {
      plugins: {legend: {display: false}},
      scales: {
        x: {grid: {color: GRID}, ticks: {color: TICK, maxTicksLimit: 12}},
        y: {grid: {color: GRID}, ticks: {color: TICK}, beginAtZero: true}
      }
    }
  });
}

const PALETTE = ["#25D366", "#60a5fa", "#f472b6", "#fbbf24", "#a78bfa", "#34d399", "#f87171"];

function personLines(id, people) {
  const el = document.getElementById(id);
  if (!el || !people.length) return;
  const labels = [...new Set(people.flatMap(p => p.data.map(b => b.date)))].sort();
  new Chart(el, {
    type: "line",
    data: {
      labels: labels,
      datasets: people.map((p, i) => {
        const byDate = Object.fromEntries(p.data.map(b => [b.date, b.count]));
        return {
          label: p.person,
          data: labels.map(d => byDate[d] ?? 0),
          borderColor: PALETTE[i % PALETTE.length],
          tension: .25,
          pointRadius: 0
        };
      })
    },
    options: {
      plugins: {legend: {labels: {color: TICK}}},
      scales: {
        x: {grid: {color: GRID}, ticks: {color: TICK, maxTicksLimit: 12}},
        y: {grid: {color: GRID}, ticks: {color: TICK}, beginAtZero: true}
      }
    }
  });
}
</script>
</body>
</html>`
