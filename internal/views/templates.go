package views

import (
	"html/template"
	"net/http"
)

var (
	playerTmpl = template.Must(template.New("player").Parse(playerTemplate))
	embedTmpl  = template.Must(template.New("embed").Parse(embedTemplate))
	loginTmpl  = template.Must(template.New("login").Parse(loginTemplate))
	adminTmpl  = template.Must(template.New("admin").Parse(adminTemplate))
)

// RenderPlayer writes the public player page.
func RenderPlayer(w http.ResponseWriter, data PlayerData) {
	render(w, playerTmpl, data)
}

// RenderEmbed writes the minimal iframe player page.
func RenderEmbed(w http.ResponseWriter, data EmbedData) {
	render(w, embedTmpl, data)
}

// RenderLogin writes the login form.
func RenderLogin(w http.ResponseWriter, data LoginData) {
	render(w, loginTmpl, data)
}

// RenderAdmin writes the admin console.
func RenderAdmin(w http.ResponseWriter, data AdminData) {
	render(w, adminTmpl, data)
}

func render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

const playerTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.StationLabel}} — RadioStream</title>
<style>
  :root{
    --body-bg: {{.Theme.BodyBg}};
    --card-bg: {{.Theme.CardBg}};
    --cover-bg: {{.Theme.CoverBg}};
    --accent1: {{.Theme.Accent1}};
    --accent2: {{.Theme.Accent2}};
    --text-color: {{.Theme.Text}};
    --muted: {{.Theme.Muted}};
  }
  html,body{height:100%;margin:0}
  body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial;background:var(--body-bg);color:var(--text-color);display:flex;align-items:center;justify-content:center;padding:20px;min-height:100vh;overflow-x:hidden;}
  #bg{position:fixed;inset:0;z-index:0;background-position:center;background-size:cover;filter:blur(10px) saturate(1.05);transform:scale(1.05);transition:opacity .4s ease;}
  #bg.hidden{opacity:0;pointer-events:none} #bg.visible{opacity:1}
  #bg-overlay{position:fixed;inset:0;background:rgba(2,6,23,0.45);z-index:0;pointer-events:none;transition:opacity .4s ease;}
  .wrap{position:relative;z-index:2;width:100%;max-width:1000px;display:flex;justify-content:center;}
  .card{width:100%;max-width:1000px;background:var(--card-bg);border-radius:16px;padding:20px;box-shadow:0 6px 30px rgba(2,6,23,0.6);
        display:grid;grid-template-columns:420px 1fr;gap:20px;align-items:center;transition:all .35s cubic-bezier(.2,.9,.2,1);position:relative;}
  .card.minimized{position:fixed;left:50%;bottom:16px;transform:translateX(-50%);width:520px;max-width:calc(100% - 32px);border-radius:12px;padding:10px 14px;display:flex;align-items:center;gap:12px;z-index:9999;}
  .cover{width:100%;height:420px;border-radius:16px;display:flex;align-items:center;justify-content:center;overflow:hidden;background:var(--cover-bg);border:4px solid rgba(255,255,255,0.03);flex:0 0 420px;}
  .card.minimized .cover{width:72px;height:72px;border-radius:10px;flex:0 0 72px;overflow:hidden;border:2px solid rgba(255,255,255,0.04);}
  .cover img{width:100%;height:100%;object-fit:cover;display:block;}
  .no-cover{color:var(--muted);font-size:20px;text-align:center;padding:10px;}
  .meta{padding:10px;display:flex;flex-direction:column;gap:8px;}
  .card.minimized .meta{padding:0;flex:1;justify-content:center;}
  h1{margin:0 0 8px 0;font-size:24px;}
  p.desc{margin:0 0 8px 0;color:var(--muted);font-size:15px;}
  .play-btn{position:relative;width:64px;height:64px;border-radius:50%;display:flex;align-items:center;justify-content:center;background:linear-gradient(180deg,var(--accent1),var(--accent2));box-shadow:0 6px 20px rgba(0,0,0,0.5);cursor:pointer;border:none;font-size:26px;color:white;}
  .play-btn[disabled]{opacity:0.6;cursor:not-allowed}
  .stop-btn{position:relative;width:64px;height:64px;border-radius:12px;display:flex;align-items:center;justify-content:center;background:linear-gradient(180deg,#e05555,#b02020);box-shadow:0 6px 20px rgba(0,0,0,0.5);cursor:pointer;border:none;color:white;font-size:20px;}
  .spinner{position:absolute;width:30px;height:30px;border-radius:50%;left:50%;top:50%;transform:translate(-50%,-50%);border:4px solid rgba(255,255,255,0.12);border-top-color:rgba(255,255,255,0.95);animation:spin 1s linear infinite;display:none;}
  @keyframes spin{to{transform:translate(-50%,-50%) rotate(360deg);}}
  .info{font-size:13px;color:var(--muted);margin-left:8px;}
  .small{font-size:12px;color:var(--muted);margin-top:4px;}
  .admin-link{position:fixed;right:14px;top:14px;background:#111827;color:var(--text-color);padding:8px 12px;border-radius:10px;text-decoration:none;z-index:10000;display:inline-flex;gap:8px;align-items:center;}
  .embed-btn{background:#1f2937;color:var(--text-color);padding:8px 10px;border-radius:8px;border:none;cursor:pointer;}
  .minimize-btn{background:transparent;border:1px solid rgba(255,255,255,0.05);padding:8px;border-radius:8px;color:var(--muted);cursor:pointer;}
  footer{margin-top:8px;color:var(--muted);font-size:12px;}
  .modal{position:fixed;inset:0;display:none;align-items:center;justify-content:center;z-index:12000;background:rgba(0,0,0,0.45);}
  .modal.show{display:flex;}
  .modal-box{background:#071024;padding:18px;border-radius:10px;width:90%;max-width:680px;color:var(--text-color);box-shadow:0 10px 40px rgba(2,6,23,0.7);}
  .modal-box textarea{width:100%;height:90px;padding:10px;border-radius:8px;background:#0b1220;color:var(--text-color);border:1px solid rgba(255,255,255,0.04);}
  .modal-row{display:flex;align-items:center;gap:8px;margin-top:8px}
  .modal-actions{display:flex;gap:8px;justify-content:flex-end;margin-top:10px;}
  @media(max-width:640px){
    .card{grid-template-columns:1fr;max-width:calc(100% - 32px);}
    .cover{height:320px;}
    .card.minimized{width:calc(100% - 32px);left:16px;transform:none;}
  }
</style>
</head>
<body>
  {{if .ShowBackground}}
    <div id="bg" class="visible" style="background-image: url('{{.BackgroundURL}}');"></div>
    <div id="bg-overlay"></div>
  {{else}}
    <div id="bg" class="hidden"></div>
    <div id="bg-overlay" style="opacity:0"></div>
  {{end}}

  <a class="admin-link" href="/admin">
    Admin
    <button id="openEmbed" class="embed-btn" title="Get iframe code">Embed</button>
  </a>

  <div class="wrap">
    <div id="card" class="card" role="region" aria-label="RadioStream player">
      <div class="cover" aria-hidden="true">
        {{if .CoverExists}}
          <img src="{{.CoverURL}}" alt="Cover">
        {{else}}
          <div class="no-cover">No cover found</div>
        {{end}}
      </div>

      <div class="meta">
        <div style="display:flex;justify-content:space-between;align-items:center;">
          <div>
            <h1 id="stationLabel">{{.StationLabel}}</h1>
            <p class="desc" id="stationDesc">{{.Description}}</p>
          </div>
          <div style="display:flex;flex-direction:column;align-items:flex-end;gap:6px;">
            <button id="minimizeBtn" class="minimize-btn" title="Minimize" aria-pressed="false">&mdash;</button>
            <div style="height:6px"></div>
          </div>
        </div>

        <div style="display:flex;align-items:center;gap:12px;">
          <button id="playBtn" class="play-btn" title="Play" aria-pressed="false">
            <span id="playIcon">&#9654;</span>
            <span class="spinner" id="spinner" role="status" aria-hidden="true"></span>
          </button>

          <div class="info" aria-live="polite">
            <div id="status">Ready to play</div>
            <div class="small">Source: <em>hidden</em></div>
          </div>
        </div>

        <footer>
          <div id="footerInfo">RadioStream player</div>
        </footer>
      </div>
    </div>
  </div>

  <div id="embedModal" class="modal" role="dialog" aria-hidden="true">
    <div class="modal-box" role="document" aria-label="Embed code">
      <h3>Iframe embed code</h3>
      <p class="small" style="color:var(--muted)">Copy the code and paste it wherever you want.</p>

      <div class="modal-row">
        <label style="color:var(--muted)"><input type="checkbox" id="autoplayCheck"> Autoplay (&nbsp;?autoplay=1&nbsp;)</label>
      </div>

      <textarea id="embedCode" readonly></textarea>
      <div class="modal-actions">
        <button id="copyEmbed" class="embed-btn">Copy</button>
        <button id="closeModal" class="embed-btn">Close</button>
      </div>
    </div>
  </div>

  <audio id="player" preload="none"></audio>

<script>
  var playBtn = document.getElementById("playBtn");
  var player = document.getElementById("player");
  var audioUrl = {{.AudioURL}};
  var statusEl = document.getElementById("status");
  var spinner = document.getElementById("spinner");
  var playIcon = document.getElementById("playIcon");
  var card = document.getElementById("card");
  var minimizeBtn = document.getElementById("minimizeBtn");

  var openEmbed = document.getElementById("openEmbed");
  var embedModal = document.getElementById("embedModal");
  var embedCode = document.getElementById("embedCode");
  var copyEmbed = document.getElementById("copyEmbed");
  var closeModal = document.getElementById("closeModal");
  var autoplayCheck = document.getElementById("autoplayCheck");

  var embedBase = {{.EmbedURL}};

  var playing = false;
  var loading = false;
  var minimized = false;
  var intentionalStop = false;

  function showSpinner(v){
    spinner.style.display = v ? "block" : "none";
    playIcon.style.opacity = v ? "0" : "1";
  }

  function setPlayState(p){
    playing = p;
    if(playing){
      playBtn.className = "stop-btn";
      playIcon.textContent = "■";
      playIcon.style.opacity = 1;
      statusEl.textContent = "Playing";
      playBtn.setAttribute("aria-pressed","true");
    } else {
      playBtn.className = "play-btn";
      playIcon.textContent = "▶";
      playIcon.style.opacity = 1;
      statusEl.textContent = "Paused";
      playBtn.setAttribute("aria-pressed","false");
    }
  }

  player.addEventListener("playing", function(){
    loading = false;
    playBtn.disabled = false;
    showSpinner(false);
    setPlayState(true);
  });

  player.addEventListener("canplay", function(){
    if (loading) {
      player.play().catch(function(){});
    }
  });

  player.addEventListener("error", function(e){
    if(intentionalStop){
      intentionalStop = false;
      return;
    }
    loading = false;
    playBtn.disabled = false;
    showSpinner(false);
    setPlayState(false);
    console.error("Audio error", e);
    alert("Failed to load the stream. Check the URL or the audio server's CORS settings.");
  });

  player.addEventListener("pause", function(){
    if(player.src === "") setPlayState(false);
  });

  playBtn.addEventListener("click", function(){
    if(loading) return;

    if(!playing){
      if(!audioUrl){
        alert("No audio URL configured. Go to /admin and set one.");
        return;
      }
      loading = true;
      intentionalStop = false;
      playBtn.disabled = true;
      showSpinner(true);
      statusEl.textContent = "Loading...";
      player.src = audioUrl;
      player.crossOrigin = "anonymous";

      player.play().catch(function(err){
        loading = false;
        playBtn.disabled = false;
        showSpinner(false);
        console.error("Play promise rejected:", err);
        alert("Playback could not start automatically. Interact with the page or check the URL/CORS.");
      });
    } else {
      intentionalStop = true;
      player.pause();
      player.currentTime = 0;
      player.src = "";
      loading = false;
      showSpinner(false);
      setPlayState(false);
      playBtn.disabled = false;
      setTimeout(function(){ intentionalStop = false; }, 700);
    }
  });

  function setMinimized(v){
    minimized = v;
    if(minimized){
      card.classList.add("minimized");
      minimizeBtn.textContent = "⬆";
      minimizeBtn.title = "Restore";
      minimizeBtn.setAttribute("aria-pressed","true");
      document.body.style.paddingBottom = "90px";
    } else {
      card.classList.remove("minimized");
      minimizeBtn.textContent = "—";
      minimizeBtn.title = "Minimize";
      minimizeBtn.setAttribute("aria-pressed","false");
      document.body.style.paddingBottom = "";
    }
  }

  minimizeBtn.addEventListener("click", function(){ setMinimized(!minimized); });
  card.addEventListener("dblclick", function(){ if(minimized) setMinimized(false); });

  function buildEmbedCode(){
    var url = autoplayCheck.checked ? embedBase + "?autoplay=1" : embedBase;
    embedCode.value = '<iframe src="' + url + '" width="420" height="180" frameborder="0" ' +
      'allow="autoplay; encrypted-media" sandbox="allow-scripts allow-same-origin"></iframe>';
  }

  openEmbed.addEventListener("click", function(e){
    e.preventDefault();
    autoplayCheck.checked = false;
    buildEmbedCode();
    embedModal.classList.add("show");
    embedModal.setAttribute("aria-hidden","false");
  });

  autoplayCheck.addEventListener("change", buildEmbedCode);

  closeModal.addEventListener("click", function(){
    embedModal.classList.remove("show");
    embedModal.setAttribute("aria-hidden","true");
  });

  copyEmbed.addEventListener("click", function(){
    navigator.clipboard.writeText(embedCode.value).then(function(){
      copyEmbed.textContent = "Copied";
      setTimeout(function(){ copyEmbed.textContent = "Copy"; }, 1500);
    }).catch(function(err){
      console.error("Copy failed", err);
      alert("Could not copy automatically. Select the text and copy it manually.");
    });
  });

  embedModal.addEventListener("click", function(ev){
    if(ev.target === embedModal) {
      embedModal.classList.remove("show");
      embedModal.setAttribute("aria-hidden","true");
    }
  });

  window.addEventListener("beforeunload", function(){
    sessionStorage.setItem("radiostream_minimized", minimized ? "1" : "0");
  });
  document.addEventListener("DOMContentLoaded", function(){
    if(sessionStorage.getItem("radiostream_minimized")==="1") setMinimized(true);
  });
</script>
</body>
</html>`

const embedTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>RadioStream Embed</title>
<style>
  :root{
    --accent1: {{.Theme.Accent1}};
    --accent2: {{.Theme.Accent2}};
    --text: {{.Theme.Text}};
    --muted: {{.Theme.Muted}};
  }
  html,body{margin:0;padding:8px;font-family:system-ui,Arial;background:transparent;color:var(--text)}
  .box{background:rgba(10,10,10,0.6);backdrop-filter:blur(4px);border-radius:8px;padding:8px;display:flex;gap:10px;align-items:center;}
  .cover{width:64px;height:64px;border-radius:6px;overflow:hidden;background:#031018;flex:0 0 64px}
  .cover img{width:100%;height:100%;object-fit:cover}
  .info{flex:1;min-width:0}
  .title{font-size:14px;margin:0 0 4px 0;white-space:nowrap;overflow:hidden;text-overflow:ellipsis}
  .desc{font-size:11px;margin:0;color:var(--muted);white-space:nowrap;overflow:hidden;text-overflow:ellipsis}
  .play{width:44px;height:44px;border-radius:50%;display:flex;align-items:center;justify-content:center;background:linear-gradient(180deg,var(--accent1),var(--accent2));color:white;border:none;cursor:pointer;font-size:18px}
  .play[disabled]{opacity:0.6;cursor:not-allowed}
  .spinner{width:20px;height:20px;border-radius:50%;border:3px solid rgba(255,255,255,0.12);border-top-color:white;animation:spin .9s linear infinite;display:none}
  @keyframes spin{to{transform:rotate(360deg);}}
  .vol-wrap{display:flex;flex-direction:column;align-items:center;gap:6px;width:130px}
  .vol-label{font-size:11px;color:var(--muted)}
  input[type=range].vol{
    -webkit-appearance:none;width:100%;height:6px;border-radius:6px;background:linear-gradient(90deg,var(--accent1),var(--accent2));
    outline:none;
  }
  input[type=range].vol::-webkit-slider-thumb{
    -webkit-appearance:none;appearance:none;width:16px;height:16px;border-radius:50%;
    background:white;box-shadow:0 2px 6px rgba(0,0,0,0.4);cursor:pointer;
  }
  .powered{font-size:10px;color:var(--muted);text-align:center;margin-top:6px}
</style>
</head>
<body>
  <div class="box" role="region" aria-label="RadioStream embed">
    <div class="cover">
      {{if .CoverExists}}
        <img src="{{.CoverURL}}" alt="Cover">
      {{else}}
        <div style="display:flex;align-items:center;justify-content:center;height:100%;color:var(--muted);font-size:12px">No cover</div>
      {{end}}
    </div>

    <div class="info">
      <div class="title">{{.StationLabel}}</div>
      <div class="desc">{{.Description}}</div>
    </div>

    <div style="display:flex;flex-direction:row;gap:10px;align-items:center">
      <div style="display:flex;flex-direction:column;align-items:center">
        <button id="play" class="play" title="Play">&#9654;</button>
        <div class="spinner" id="spinner" aria-hidden="true"></div>
      </div>

      <div class="vol-wrap" aria-hidden="false">
        <div class="vol-label">Vol: <span id="volPerc">100%</span></div>
        <input id="volSlider" class="vol" type="range" min="0" max="100" value="100" step="1" aria-label="Volume">
      </div>
    </div>
  </div>

  <div class="powered">Powered by RadioStream</div>

  <audio id="player" preload="none"></audio>

<script>
  var params = new URLSearchParams(location.search);
  var autoplay = params.get("autoplay") === "1";

  var audioUrl = {{.AudioURL}};
  var play = document.getElementById("play");
  var spinner = document.getElementById("spinner");
  var player = document.getElementById("player");
  var volSlider = document.getElementById("volSlider");
  var volPerc = document.getElementById("volPerc");

  var loading = false;
  var playing = false;
  var intentional = false;

  function showSpinner(v){ spinner.style.display = v ? "block" : "none"; play.style.opacity = v ? "0.35" : "1"; play.disabled = v; }

  function applyVolumeFromSlider() {
    var v = Math.max(0, Math.min(100, Number(volSlider.value)));
    player.volume = v / 100;
    volPerc.textContent = v + "%";
  }
  applyVolumeFromSlider();

  player.addEventListener("playing", function(){ loading = false; showSpinner(false); play.textContent = "■"; playing = true; });
  player.addEventListener("pause", function(){ if(player.src === "") { play.textContent = "▶"; playing = false; }});
  player.addEventListener("error", function(e){ if(intentional){ intentional = false; return; } showSpinner(false); playing = false; play.textContent = "▶"; console.error("Embed audio error", e); });

  play.addEventListener("click", function(){
    if(loading) return;
    if(!playing){
      if(!audioUrl){ alert("Stream not configured"); return; }
      loading = true; intentional = false; showSpinner(true);
      player.src = audioUrl; player.crossOrigin = "anonymous";
      applyVolumeFromSlider();
      player.play().catch(function(e){
        loading = false; showSpinner(false);
        console.error("Play error:", e);
      });
    } else {
      intentional = true;
      player.pause(); player.currentTime = 0; player.src = "";
      showSpinner(false); playing = false; play.textContent = "▶";
      setTimeout(function(){ intentional = false; }, 500);
    }
  });

  volSlider.addEventListener("input", applyVolumeFromSlider);
  volSlider.addEventListener("change", applyVolumeFromSlider);

  if(autoplay && audioUrl){
    setTimeout(function(){
      loading = true;
      showSpinner(true);
      player.src = audioUrl;
      player.crossOrigin = "anonymous";
      applyVolumeFromSlider();
      player.play().catch(function(e){
        console.error("Autoplay attempt failed:", e);
        loading = false;
        showSpinner(false);
      });
    }, 120);
  }
</script>
</body>
</html>`

const loginTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>Login</title>
<style>body{font-family:system-ui;background:#071022;color:#dbeafe;display:flex;align-items:center;justify-content:center;height:100vh;margin:0}.box{background:#0b1726;padding:28px;border-radius:12px;width:360px}</style>
</head>
<body>
<div class="box">
  <h2>Admin Login</h2>
  {{if .Notice}}<div style="background:#042f2a;padding:8px;border-radius:8px;margin-bottom:10px;color:#b3f0df">{{.Notice}}</div>{{end}}
  <form method="post" action="/login{{if .Next}}?next={{.Next}}{{end}}">
    <label>Username</label><input name="username" required style="width:100%;padding:8px;margin:6px 0">
    <label>Password</label><input name="password" type="password" required style="width:100%;padding:8px;margin:6px 0">
    <button style="width:100%;padding:10px;margin-top:8px;background:#065f46;color:white;border:none;border-radius:8px">Sign in</button>
  </form>
</div>
</body>
</html>`

const adminTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>Admin — RadioStream</title>
<style>body{font-family:system-ui;background:#071022;color:#e6eef8;margin:0;padding:20px}.wrap{max-width:1200px;margin:20px auto;background:#071628;padding:18px;border-radius:12px}label{display:block;font-size:13px;margin-top:8px;color:#9fb3cf}input,textarea{width:100%;padding:10px;border-radius:8px;border:1px solid rgba(255,255,255,0.05);background:#031020;color:#e6eef8}textarea{min-height:120px} .right-card{background:#0b1726;padding:12px;border-radius:10px}.preview{width:100%;height:220px;border-radius:12px;display:flex;align-items:center;justify-content:center;overflow:hidden;background:#00111b;border:2px dashed rgba(255,255,255,0.03)}.btn-save{background:#0ea5a4;color:#012;padding:10px;border-radius:8px;border:none}.btn-logout{background:#ef4444;color:white;padding:10px;border-radius:8px;border:none;text-decoration:none}
.admin-grid{display:grid;grid-template-columns:1fr 420px;gap:18px}
.live-preview{background:linear-gradient(180deg,#071028,#071b2a);border-radius:10px;padding:12px;color:#e6eef8}
.live-preview .cover{width:100%;height:160px;border-radius:8px;overflow:hidden;background:#08121a;display:flex;align-items:center;justify-content:center}
.live-preview .cover img{width:100%;height:100%;object-fit:cover}
.live-preview h3{margin:8px 0 4px 0;font-size:18px}
.live-preview p{margin:0;color:#9fb3cf;font-size:14px}
.preview-controls{display:flex;gap:10px;align-items:center;margin-top:8px}
.color-swatch{width:28px;height:28px;border-radius:6px;border:1px solid rgba(255,255,255,0.06)}
.small-muted{font-size:12px;color:#9fb3cf;margin-top:8px}
</style>
</head>
<body>
<div style="display:flex;justify-content:space-between;align-items:center;max-width:1200px;margin:10px auto;">
  <div>Logged in as <strong>{{.CurrentUser}}</strong></div>
  <div><a href="/" style="margin-right:10px;color:#9fb3cf;text-decoration:none">&larr; View site</a><a href="/logout" class="btn-logout">Log out</a></div>
</div>

<div class="wrap">
  <h1>Admin console — RadioStream</h1>
  {{if .Notice}}<div style="background:#042f2a;padding:8px;border-radius:8px;margin-bottom:10px;color:#b3f0df">{{.Notice}}</div>{{end}}

  <form method="post" enctype="multipart/form-data" style="margin-top:12px">
    <div class="admin-grid">
      <div>
        <label>Station label</label><input id="fieldStation" name="station_label" value="{{.StationLabel}}" required>
        <label>Description (short)</label><textarea id="fieldDesc" name="description">{{.Description}}</textarea>
        <label>Audio stream URL</label><input id="fieldAudio" name="audio_url" value="{{.AudioURL}}" placeholder="https://...">
        <label>Change port (restart to apply)</label><input name="port" value="{{.Port}}" pattern="\d*">
        <hr style="margin:12px 0;border:none;border-top:1px solid rgba(255,255,255,0.04)">
        <label>New username (empty = no change)</label><input name="new_user" placeholder="new username">
        <label>New password (empty = no change)</label><input name="new_pass" type="password" placeholder="new password">
        <div style="margin-top:12px;"><button class="btn-save" type="submit">Save changes</button>
        <button name="restore_colors" value="1" style="margin-left:8px;background:#111827;color:#fff;padding:10px;border-radius:8px;border:none">Restore colors</button></div>
        <div style="margin-top:8px;color:#9fb3cf">After changing the port, restart the server to apply.</div>
      </div>

      <div>
        <div class="right-card">
          <div class="small-muted">Live preview (before saving)</div>
          <div id="adminPreview" class="live-preview" role="region" aria-label="Preview">
            <div id="previewBg" style="border-radius:8px;padding:8px;background-size:cover;background-position:center;">
              <div class="cover" id="previewCoverContainer">
                {{if .CoverExists}}
                  <img id="previewCover" src="{{.CoverURL}}" alt="Cover preview">
                {{else}}
                  <div id="previewNoCover" style="color:#9fb3cf">No cover</div>
                {{end}}
              </div>
              <h3 id="previewTitle">{{.StationLabel}}</h3>
              <p id="previewDesc">{{.Description}}</p>
              <div class="preview-controls">
                <div style="display:flex;align-items:center;gap:8px">
                  <button type="button" style="width:44px;height:44px;border-radius:50%;background:#07a08b;border:none;color:white">&#9654;</button>
                  <div style="font-size:12px;color:#9fb3cf">Vol: 100%</div>
                </div>
                <div style="margin-left:auto;display:flex;align-items:center;gap:8px">
                  <div class="color-swatch" id="swBody" title="Body color"></div>
                  <div class="color-swatch" id="swCard" title="Card color"></div>
                  <div class="color-swatch" id="swAccent" title="Accent"></div>
                </div>
              </div>
            </div>
          </div>

          <hr style="margin:12px 0;border:none;border-top:1px solid rgba(255,255,255,0.04)">

          <label>Current cover</label>
          <div class="preview">{{if .CoverExists}}<img id="currentCover" src="{{.CoverURL}}" style="width:100%;height:100%;object-fit:cover">{{else}}<div style="color:#9fb3cf">No cover</div>{{end}}</div>
          <label>Upload cover</label><input id="coverFile" type="file" name="cover_file" accept="image/*">
          <hr style="margin:10px 0;border:none;border-top:1px solid rgba(255,255,255,0.04)">
          <label>Current background</label>
          <div class="preview" style="height:120px">{{if .BackgroundExists}}<img id="currentBg" src="{{.BackgroundURL}}" style="width:100%;height:100%;object-fit:cover">{{else}}<div style="color:#9fb3cf">No background</div>{{end}}</div>
          <label>Upload background</label><input id="bgFile" type="file" name="background_file" accept="image/*">
          <div style="display:flex;gap:8px;align-items:center;margin-top:8px">
            <label style="color:#9fb3cf">Enable background</label>
            <input id="bgEnabled" type="checkbox" name="background_enabled" value="1" {{if .BackgroundEnabled}}checked{{end}}>
            <button name="remove_background" value="1" style="margin-left:auto;background:#7f1d1d;color:white;padding:8px;border-radius:8px;border:none">Remove background</button>
          </div>
          <hr style="margin:10px 0;border:none;border-top:1px solid rgba(255,255,255,0.04)">

          <label>Colors (pickers)</label>
          <div style="display:flex;gap:8px;margin-top:8px">
            <input id="bodyColor" type="color" name="body_bg" value="{{.BodyBgHex}}" style="width:46px;height:34px">
            <input id="cardColor" type="color" name="card_bg" value="{{.CardHex}}" style="width:46px;height:34px">
            <input id="accentColor" type="color" name="accent1" value="{{.Theme.Accent1}}" style="width:46px;height:34px">
            <input id="textColor" type="color" name="text" value="{{.Theme.Text}}" style="width:46px;height:34px">
          </div>
          <div style="margin-top:12px;color:#9fb3cf">Current port: <strong>{{.Port}}</strong></div>
        </div>
      </div>
    </div>
  </form>
</div>

<script>
(function(){
  var previewRoot = document.getElementById("adminPreview");
  var previewTitle = document.getElementById("previewTitle");
  var previewDesc = document.getElementById("previewDesc");
  var previewCover = document.getElementById("previewCover");
  var previewNoCover = document.getElementById("previewNoCover");
  var previewBg = document.getElementById("previewBg");

  var fieldStation = document.getElementById("fieldStation");
  var fieldDesc = document.getElementById("fieldDesc");

  var coverFile = document.getElementById("coverFile");
  var bgFile = document.getElementById("bgFile");
  var bgEnabled = document.getElementById("bgEnabled");

  var bodyColor = document.getElementById("bodyColor");
  var cardColor = document.getElementById("cardColor");
  var accentColor = document.getElementById("accentColor");
  var textColor = document.getElementById("textColor");

  var swBody = document.getElementById("swBody");
  var swCard = document.getElementById("swCard");
  var swAccent = document.getElementById("swAccent");

  previewTitle.textContent = fieldStation.value || "RadioStream";
  previewDesc.textContent = fieldDesc.value || "A short description of the station.";

  function applyColors(){
    var body = bodyColor.value;
    var card = cardColor.value;
    var accent = accentColor.value;
    var text = textColor.value;
    swBody.style.background = body;
    swCard.style.background = card;
    swAccent.style.background = accent;
    previewRoot.style.background = card;
    previewRoot.style.color = text;
    previewRoot.style.setProperty("--accent1", accent);
    previewRoot.style.setProperty("--body-bg", body);
    previewBg.style.backgroundColor = body;
  }
  applyColors();

  fieldStation.addEventListener("input", function(){ previewTitle.textContent = fieldStation.value || "RadioStream"; });
  fieldDesc.addEventListener("input", function(){ previewDesc.textContent = fieldDesc.value || "A short description of the station."; });

  coverFile.addEventListener("change", function(e){
    var f = e.target.files && e.target.files[0];
    if(!f){ return; }
    var url = URL.createObjectURL(f);
    if(previewCover){
      previewCover.src = url;
      previewCover.style.display = "";
      if(previewNoCover) previewNoCover.style.display = "none";
    } else {
      var img = document.createElement("img");
      img.id = "previewCover";
      img.src = url;
      img.style.width = "100%";
      img.style.height = "100%";
      img.style.objectFit = "cover";
      var container = document.getElementById("previewCoverContainer");
      container.innerHTML = "";
      container.appendChild(img);
    }
  });

  bgFile.addEventListener("change", function(e){
    var f = e.target.files && e.target.files[0];
    if(!f){ return; }
    var url = URL.createObjectURL(f);
    previewBg.style.backgroundImage = "url('" + url + "')";
    previewBg.style.backgroundSize = "cover";
    previewBg.style.backgroundPosition = "center";
    if(!bgEnabled.checked){
      bgEnabled.checked = true;
    }
  });

  bgEnabled.addEventListener("change", function(){
    if(bgEnabled.checked){
      previewBg.style.filter = "";
      previewBg.style.opacity = "1";
    } else {
      previewBg.style.backgroundImage = "";
      previewBg.style.backgroundColor = "";
    }
  });

  [bodyColor, cardColor, accentColor, textColor].forEach(function(el){
    el.addEventListener("input", applyColors);
  });

  if(!document.getElementById("previewCover")){
    if(previewNoCover) previewNoCover.style.display = "";
  }
})();
</script>
</body>
</html>`
