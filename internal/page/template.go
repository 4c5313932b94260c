package page

// portalHTML is the whole static site: Tailwind via CDN plus a little
// inline JS for live search, theme toggling, and keyboard navigation.
const portalHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&display=swap" rel="stylesheet">
  <script src="https://cdn.tailwindcss.com"></script>
<style>
    :root { --card-r: 18px; }
    html { font-family: Inter, system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; }
    .card:hover img { transform: scale(1.04); }
    .card img { transition: transform .25s ease; }
    .shine { position: relative; overflow: hidden; }
    .shine::after {
      content: ""; position: absolute; top:0; left:-150%; width: 50%; height: 100%;
      background: linear-gradient(120deg, transparent, rgba(255,255,255,.25), transparent);
      transform: skewX(-20deg);
    }
    .card:hover .shine::after { left: 150%; transition: left .75s ease; }
</style>
</head>
<body class="bg-slate-50 text-slate-900 dark:bg-slate-900 dark:text-slate-100 min-h-screen">
  <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8">
    <header class="flex flex-col gap-4 sm:flex-row sm:items-end sm:justify-between">
      <div>
        <h1 class="text-3xl sm:text-4xl font-extrabold">{{.Title}}</h1>
        <p class="mt-1 text-slate-600 dark:text-slate-300">{{.Description}}</p>
      </div>
      <div class="flex items-center gap-3 mt-2">
        <input id="search" type="search" placeholder="Buscar..." class="w-64 rounded-xl border border-slate-300 dark:border-slate-700 bg-white/80 dark:bg-slate-800/60 px-3 py-2 outline-none focus:ring-2 focus:ring-indigo-400" />
        <button id="themeToggle" class="rounded-xl px-3 py-2 border border-slate-300 dark:border-slate-700">Tema</button>
      </div>
    </header>

    <main class="mt-6">
      <div id="grid" class="grid gap-6 grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4">
{{- range .Cards}}
      <article tabindex="0" class="card group rounded-2xl overflow-hidden bg-white/70 dark:bg-slate-800/70 border border-slate-200 dark:border-slate-700 shadow-sm focus:ring-2 focus:ring-indigo-400"
               data-title="{{.TitleLower}}" data-desc="{{.DescLower}}" data-url="{{.URLLower}}" data-href="{{.URL}}">
        <a href="{{.URL}}" target="_blank" class="block shine">{{if .Asset}}<img src="{{.Asset}}" alt="{{.Title}}" class="w-full h-44 object-cover rounded-t-2xl" loading="lazy">{{else}}<div class="w-full h-44 bg-slate-200 dark:bg-slate-700 rounded-t-2xl"></div>{{end}}</a>
        <div class="p-4">
          <h3 class="font-semibold text-lg leading-tight line-clamp-2">{{.Title}}</h3>
          <p class="text-sm text-slate-600 dark:text-slate-300 mt-1 line-clamp-3">{{.Desc}}</p>
          <div class="mt-3 text-xs text-slate-500 truncate">{{.URL}}</div>
        </div>
      </article>
{{- end}}
      </div>
    </main>

    <footer class="text-center text-sm text-slate-500 mt-10">Generado automáticamente — {{.Date}}</footer>
  </div>

  <script>
    // Búsqueda en vivo
    const q = document.getElementById('search');
    const cards = Array.from(document.querySelectorAll('.card'));
    q.addEventListener('input', () => {
      const v = q.value.toLowerCase();
      cards.forEach(c => {
        const hay = c.dataset.title.includes(v) || c.dataset.desc.includes(v) || c.dataset.url.includes(v);
        c.style.display = hay ? '' : 'none';
      });
    });

    // Tema claro/oscuro
    const toggle = document.getElementById('themeToggle');
    const pref = localStorage.getItem('theme') || (matchMedia('(prefers-color-scheme: dark)').matches ? 'dark' : 'light');
    document.documentElement.classList.toggle('dark', pref==='dark');
    toggle.addEventListener('click', () => {
      const now = document.documentElement.classList.toggle('dark');
      localStorage.setItem('theme', now ? 'dark' : 'light');
    });

    // Abrir en nueva pestaña al pulsar Enter sobre tarjeta enfocada
    document.addEventListener('keydown', (e) => {
      if (e.key === 'Enter' && document.activeElement?.classList.contains('card')) {
        const url = document.activeElement.getAttribute('data-href');
        if (url) window.open(url, '_blank');
      }
    });
  </script>
</body>
</html>
`
