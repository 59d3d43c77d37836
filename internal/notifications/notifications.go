// Package notifications serves the dashboard announcement panel. The feed
// is a fixed in-process list; there is no persistence and no per-user
// read/dismissed state in this slice.
package notifications

import "sort"

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Link      string `json:"link,omitempty"`
	LinkLabel string `json:"link_label,omitempty"`
	TimeText  string `json:"time_text,omitempty"`
	IsNew     bool   `json:"is_new"`
	IsPinned  bool   `json:"is_pinned,omitempty"`
}

var announcements = []Notification{
	{
		ID:       "welcome",
		Title:    "欢迎使用 OpenLovart",
		Content:  "输入一句话描述你的想法，即可生成一个新的设计项目。",
		IsNew:    false,
		IsPinned: true,
	},
	{
		ID:        "credits-gift",
		Title:     "新用户礼包",
		Content:   "首次登录自动发放 1000 积分，可用于 AI 生成。",
		TimeText:  "3 天前",
		IsNew:     true,
		Link:      "/pricing",
		LinkLabel: "了解积分",
	},
	{
		ID:       "canvas-update",
		Title:    "画布编辑器更新",
		Content:  "图层面板支持拖拽排序，文本工具新增字距调节。",
		TimeText: "1 周前",
		IsNew:    true,
	},
	{
		ID:       "templates",
		Title:    "模板库上线",
		Content:  "新增 50+ 海报与社交媒体模板。",
		TimeText: "2 周前",
		IsNew:    false,
	},
}

// List returns the announcement feed with pinned entries first. Pinned
// entries carry no relative-time text.
func List() []Notification {
	out := make([]Notification, len(announcements))
	copy(out, announcements)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPinned && !out[j].IsPinned
	})
	for i := range out {
		if out[i].IsPinned {
			out[i].TimeText = ""
		}
	}
	return out
}
