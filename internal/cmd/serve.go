// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/anilist"
	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newServeCmd(cfg *config.Config, tracker *track.Tracker, catalog *anilist.Client) *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web UI server",
		Long:  "Start a read-only web interface for browsing your watchlist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := fmt.Sprintf("%s:%d", bind, port)

			http.HandleFunc("/", handleIndex())
			http.HandleFunc("/api/watchlist", handleAPIWatchlist(tracker))
			http.HandleFunc("/api/lists", handleAPILists(tracker))
			http.HandleFunc("/api/recent", handleAPIRecent(tracker))
			http.HandleFunc("/api/stats", handleAPIStats(tracker))
			http.HandleFunc("/api/achievements", handleAPIAchievements(tracker))

			fmt.Printf("Starting anitrack web server on http://%s\n", addr)
			fmt.Println("Press Ctrl+C to stop")

			return http.ListenAndServe(addr, nil)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to serve on")
	cmd.Flags().StringVarP(&bind, "bind", "b", "127.0.0.1", "Address to bind to")

	return cmd
}

var indexTemplate = `<!DOCTYPE html>
<html>
<head>
	<title>anitrack</title>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<style>
		* { box-sizing: border-box; margin: 0; padding: 0; }
		body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 1100px; margin: 0 auto; padding: 20px; }
		h1 { margin-bottom: 20px; color: #2c3e50; }
		h2 { margin: 24px 0 12px; color: #2c3e50; font-size: 18px; }
		.stats { display: flex; gap: 20px; margin-bottom: 20px; flex-wrap: wrap; }
		.stat { background: #f8f9fa; padding: 10px 20px; border-radius: 4px; }
		.stat-value { font-size: 24px; font-weight: bold; color: #8b5cf6; }
		.stat-label { font-size: 12px; color: #666; text-transform: uppercase; }
		table { width: 100%; border-collapse: collapse; }
		th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #eee; font-size: 14px; }
		th { color: #666; text-transform: uppercase; font-size: 12px; }
		.status { display: inline-block; padding: 2px 10px; border-radius: 10px; font-size: 12px; background: #ede9fe; color: #6d28d9; }
		.fav { color: #e11d48; }
		.loading { text-align: center; padding: 40px; color: #666; }
	</style>
</head>
<body>
	<h1>&#x1F4FA; anitrack</h1>

	<div class="stats" id="stats"></div>

	<h2>Watchlist</h2>
	<div id="watchlist"><div class="loading">Loading...</div></div>

	<h2>Custom lists</h2>
	<div id="lists"><div class="loading">Loading...</div></div>

	<h2>Recently viewed</h2>
	<div id="recent"><div class="loading">Loading...</div></div>

	<script>
		function esc(text) {
			const div = document.createElement('div');
			div.textContent = text == null ? '' : text;
			return div.innerHTML;
		}

		async function loadStats() {
			const res = await fetch('/api/stats');
			const s = await res.json();
			const cells = [
				[s.totals.totalAnime, 'Anime'],
				[s.totals.totalEpisodes, 'Episodes'],
				[s.watch_time.hours, 'Hours watched'],
				[s.totals.totalRewatches, 'Rewatches'],
				[s.achievements_unlocked, 'Achievements']
			];
			document.getElementById('stats').innerHTML = cells.map(function(c) {
				return '<div class="stat"><div class="stat-value">' + esc(c[0]) + '</div><div class="stat-label">' + esc(c[1]) + '</div></div>';
			}).join('');
		}

		async function loadWatchlist() {
			const res = await fetch('/api/watchlist');
			const entries = await res.json();
			if (!entries.length) {
				document.getElementById('watchlist').innerHTML = '<div class="loading">Watchlist is empty</div>';
				return;
			}
			let html = '<table><tr><th>ID</th><th>Status</th><th>Progress</th><th>Score</th><th></th></tr>';
			entries.forEach(function(e) {
				html += '<tr><td>' + e.animeId + '</td>';
				html += '<td><span class="status">' + esc(e.status) + '</span></td>';
				html += '<td>' + e.progress + '</td>';
				html += '<td>' + (e.score != null ? e.score : '-') + '</td>';
				html += '<td>' + (e.favorite ? '<span class="fav">&hearts;</span>' : '') + '</td></tr>';
			});
			document.getElementById('watchlist').innerHTML = html + '</table>';
		}

		async function loadLists() {
			const res = await fetch('/api/lists');
			const lists = await res.json();
			if (!lists.length) {
				document.getElementById('lists').innerHTML = '<div class="loading">No custom lists</div>';
				return;
			}
			let html = '<table><tr><th>Name</th><th>Anime</th><th>Description</th></tr>';
			lists.forEach(function(l) {
				html += '<tr><td>' + esc(l.name) + '</td><td>' + l.animeIds.length + '</td><td>' + esc(l.description) + '</td></tr>';
			});
			document.getElementById('lists').innerHTML = html + '</table>';
		}

		async function loadRecent() {
			const res = await fetch('/api/recent');
			const items = await res.json();
			if (!items.length) {
				document.getElementById('recent').innerHTML = '<div class="loading">Nothing viewed recently</div>';
				return;
			}
			let html = '<table><tr><th>ID</th><th>Title</th><th>Viewed</th></tr>';
			items.forEach(function(i) {
				html += '<tr><td>' + i.animeId + '</td><td>' + esc(i.title) + '</td><td>' + esc(new Date(i.viewedAt).toLocaleString()) + '</td></tr>';
			});
			document.getElementById('recent').innerHTML = html + '</table>';
		}

		loadStats();
		loadWatchlist();
		loadLists();
		loadRecent();
	</script>
</body>
</html>
`

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(indexTemplate))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func handleAPIWatchlist(tracker *track.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tracker.Watchlist.All())
	}
}

func handleAPILists(tracker *track.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tracker.Lists.All())
	}
}

func handleAPIRecent(tracker *track.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tracker.Recent.All())
	}
}

func handleAPIStats(tracker *track.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := tracker.Watchlist.All()
		stats := track.ComputeStatistics(entries)
		achievements := track.EvaluateAchievements(stats, track.DefaultAchievements(), time.Now().UTC())

		writeJSON(w, map[string]any{
			"totals":                stats,
			"watch_time":            track.ComputeWatchTime(entries),
			"by_status":             track.StatusDistribution(entries),
			"favorites":             track.FavoriteCount(entries),
			"achievements_unlocked": track.UnlockedCount(achievements),
		})
	}
}

func handleAPIAchievements(tracker *track.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := tracker.Watchlist.Statistics()
		writeJSON(w, track.EvaluateAchievements(stats, track.DefaultAchievements(), time.Now().UTC()))
	}
}
