package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":               "パイプラインを開始します",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Decoding %s":                     "%s をデコード中",
		"Decoded %dx%d %s image":          "%dx%d の %s 画像をデコードしました",
		"Using font %s at %gpx":           "フォント %s (%gpx) を使用します",

		// Orchestration level messages (error)
		"Failed to decode image: %s":      "画像のデコードに失敗しました: %s",
		"Failed to resolve font: %s":      "フォントの解決に失敗しました: %s",
		"Failed to composite image: %s":   "画像の合成に失敗しました: %s",
		"Failed to read back surface: %s": "サーフェスの読み出しに失敗しました: %s",
		"Failed to encode image: %s":      "画像のエンコードに失敗しました: %s",

		// Decode stage
		"Read %d bytes from %s": "%[2]s から %[1]d バイトを読み込みました",

		// Composite stage
		"Image transform scale=(%g,%g) translate=(%g,%g)": "画像変換 拡大率=(%g,%g) 移動=(%g,%g)",
		"Drew %d characters of text at (%g,%g)":           "(%[2]g,%[3]g) に %[1]d 文字のテキストを描画しました",
		"Composited %dx%d surface":                        "%dx%d のサーフェスを合成しました",

		// Extract stage
		"Snapshot %dx%d (%d bytes)": "スナップショット %dx%d (%d バイト)",

		// Encode stage
		"Wrote %d bytes to %s": "%[2]s に %[1]d バイトを書き込みました",

		// Debug output
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",
	})
}
