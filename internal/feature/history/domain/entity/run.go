// Package entity はhistoryフィーチャーのドメインモデルを定義します。
package entity

import "time"

// RecognitionRun は1回の認識・注釈処理の記録を表します。
type RecognitionRun struct {
	ID             uint
	Source         string    // 入力画像のファイル名
	CelebrityCount int       // 認識された有名人の数
	TopMatch       string    // 最も信頼度の高い有名人の名前
	TopConfidence  float32   // その信頼度
	OutputPath     string    // 注釈済み画像の保存先
	CreatedAt      time.Time // 処理時刻
}
