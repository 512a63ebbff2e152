package domain

// UnknownUserLabel は投稿者が特定できない場合の表示名
const UnknownUserLabel = "Unknown User"

// User はSlackユーザーを表すドメインモデル
type User struct {
	ID          string
	Name        string
	DisplayName string
	RealName    string
}

// Account はこのアプリケーションの利用者を表すドメインモデル
// 認証・登録のフローは永続化層の外側が担当する
type Account struct {
	ID   string
	Name string
}

// GetDisplayName は表示名を優先順位に従って返す
// 優先順位: DisplayName > RealName > Name > ID
func (u *User) GetDisplayName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.RealName != "" {
		return u.RealName
	}
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}
