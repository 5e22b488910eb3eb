// Package entity はprofileフィーチャーのドメインモデルを定義します。
package entity

// CelebrityProfile は有名人1人に対する紹介サマリーを表します。
type CelebrityProfile struct {
	Name    string // 有名人の名前
	Summary string // 生成された紹介文
}
