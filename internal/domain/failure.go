package domain

import "errors"

// ErrAccountNotFound は利用者レコードが存在しないことを示す
var ErrAccountNotFound = errors.New("アカウントが見つかりません")

// FailureReason はリンク解決の失敗理由を表す機械可読な識別子
type FailureReason string

const (
	ReasonValidationFailed  FailureReason = "validation_failed"
	ReasonUserNotFound      FailureReason = "user_not_found"
	ReasonNoConnection      FailureReason = "no_connection"
	ReasonMessageNotFound   FailureReason = "message_not_found"
	ReasonRepositoryFailure FailureReason = "repository_failure"
	ReasonUnexpected        FailureReason = "unexpected_failure"
)

// Failure はリンク解決の型付き失敗結果
// Statusは呼び出し側（HTTPハンドラなど）への推奨ステータスコード
type Failure struct {
	Reason  FailureReason
	Status  int
	Message string
	Err     error
}

// Error はerrorインターフェースを満たす
func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Message + ": " + f.Err.Error()
	}
	return f.Message
}

// Unwrap は原因となったエラーを返す
func (f *Failure) Unwrap() error {
	return f.Err
}

// NewFailure は失敗理由に応じた推奨ステータスコード付きのFailureを作成する
// 400: バリデーション失敗 / 401: 利用者不明 / 404: メッセージ未発見 / それ以外は500
func NewFailure(reason FailureReason, message string, err error) *Failure {
	status := 500
	switch reason {
	case ReasonValidationFailed:
		status = 400
	case ReasonUserNotFound:
		status = 401
	case ReasonMessageNotFound:
		status = 404
	}
	return &Failure{
		Reason:  reason,
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// AsFailure はエラーからFailureを取り出す
// Failureでない場合はReasonUnexpectedとして包み直す
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return NewFailure(ReasonUnexpected, "予期しないエラーが発生しました", err)
}
