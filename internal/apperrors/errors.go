package apperrors

import "errors"

// 预定义错误。训练引擎本身没有可恢复的错误路径，
// 这里只覆盖排行榜存储这类外围设施。
var (
	ErrStorageDisabled = errors.New("排行榜存储未启用")
	ErrStatsNotFound   = errors.New("没有该玩家的统计数据")
)
