// Package main provides localization for the rastercomp CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Composite an image with a text overlay and report render latency.": "画像にテキストを重ねて合成し、描画時間を表示します。",

		// Runtime messages
		"Output saved to %s":             "出力を %s に保存しました",
		"Interrupted, shutting down...":  "中断されました。シャットダウン中...",
		"Unknown log level %q, using %s": "不明なログレベル %q のため %s を使用します",
		"Summary saved to %s":            "サマリーを %s に保存しました",
		"Failed to write summary: %s":    "サマリーの書き込みに失敗しました: %s",
	})
}
