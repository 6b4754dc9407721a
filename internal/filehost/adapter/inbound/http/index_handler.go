package http_handler

import (
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
	"github.com/gofiber/fiber/v2"
)

type indexEntry struct {
	Name     string
	Href     string
	Size     string
	Uploaded string
}

type indexPage struct {
	Sort    string
	Entries []indexEntry
	Notice  string
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	order := domain.ParseSortOrder(c.Query("sort"))

	infos, err := s.files.List(c.Context(), order)
	if err != nil {
		return s.sendServiceError(c, err)
	}

	page := indexPage{
		Sort:    string(order),
		Entries: make([]indexEntry, 0, len(infos)),
		Notice:  s.board.Current(),
	}
	for _, info := range infos {
		page.Entries = append(page.Entries, indexEntry{
			Name:     info.Name,
			Href:     "/" + url.PathEscape(info.Name),
			Size:     humanSize(info.Size),
			Uploaded: info.CreatedAt.Local().Format(time.DateTime),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return indexTemplate.Execute(c.Response().BodyWriter(), page)
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>File host</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
td, th { padding: 4px 12px; text-align: left; }
textarea { width: 100%; height: 8em; }
#status { color: #888; font-size: 0.9em; }
</style>
</head>
<body>
<h1>File host</h1>

<h2>Notice board <span id="status">connecting</span></h2>
<textarea id="notice">{{.Notice}}</textarea>
<button id="reset">Clear</button>

<h2>Files</h2>
<p>Sort by:
{{if eq .Sort "ext"}}<a href="/?sort=time">time</a> | <b>extension</b>{{else}}<b>time</b> | <a href="/?sort=ext">extension</a>{{end}}
</p>
<form method="post" action="/" enctype="multipart/form-data">
<input type="file" name="file"> <button type="submit">Upload</button>
</form>
<table>
<tr><th>Name</th><th>Size</th><th>Uploaded</th><th></th></tr>
{{range .Entries}}<tr>
<td><a href="{{.Href}}">{{.Name}}</a></td>
<td>{{.Size}}</td>
<td>{{.Uploaded}}</td>
<td><button data-href="{{.Href}}" class="delete">delete</button></td>
</tr>
{{else}}<tr><td colspan="4">No files yet. Upload with: curl --upload-file FILE http://HOST/FILE</td></tr>
{{end}}</table>

<script>
(function () {
  var box = document.getElementById("notice");
  var status = document.getElementById("status");
  var ws;

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    ws = new WebSocket(proto + location.host + "/ws");
    ws.onopen = function () { status.textContent = "live"; };
    ws.onclose = function () {
      status.textContent = "offline, retrying";
      setTimeout(connect, 2000);
    };
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if ((msg.type === "init" || msg.type === "update") && box.value !== msg.content) {
        box.value = msg.content;
      }
    };
  }

  box.addEventListener("input", function () {
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: "update", content: box.value}));
    }
  });
  document.getElementById("reset").addEventListener("click", function () {
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: "reset"}));
    }
  });
  document.querySelectorAll("button.delete").forEach(function (btn) {
    btn.addEventListener("click", function () {
      fetch(btn.dataset.href, {method: "DELETE"}).then(function () { location.reload(); });
    });
  });

  connect();
})();
</script>
</body>
</html>
`))
