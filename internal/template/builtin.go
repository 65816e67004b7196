package template

import "htbnotes/internal/models"

// BuiltinFor returns the built-in note template for a record type. It
// is the last link of every resolution chain, so note creation always
// has a template to fall back on.
func BuiltinFor(kind models.Kind) string {
	switch kind {
	case models.KindChallenge:
		return BuiltinChallengeTemplate
	case models.KindSherlock:
		return BuiltinSherlockTemplate
	default:
		return BuiltinMachineTemplate
	}
}

const BuiltinMachineTemplate = `---
created: {{currentTime}}
tags:
  - HTB
title: "{{title}}"
OS: {{OS}}
difficulty: {{difficulty}}
datePublished: {{datePublished}}
image: {{imageUrl}}
author:
{{author}}
comment:
aliases:
score: {{score}}
scoreStar: {{scoreStar}}
favorite: {{favorite}}
updated: {{currentTime}}
locked: false
---

![]({{imageUrl}})
`

const BuiltinChallengeTemplate = `---
created: {{currentTime}}
tags:
  - HTB
  - Challenge
  - {{category}}
title: "{{title}}"
type: Challenge
category: {{category}}
difficulty: {{difficulty}}
datePublished: {{datePublished}}
image: {{imageUrl}}
author:
{{author}}
comment:
aliases:
score: {{score}}
scoreStar: {{scoreStar}}
solves: {{solves}}
updated: {{currentTime}}
locked: false
---

![]({{imageUrl}})

## Challenge 信息

- **类型**: Challenge
- **分类**: {{category}}
- **难度**: {{difficulty}}
- **积分**: {{points}}
- **解题数**: {{solves}}
- **发布日期**: {{datePublished}}

## 制作者

{{author}}

## 描述

{{description}}

## 解题思路

<!-- 在这里记录你的解题过程 -->

## Flag

` + "```" + `
<!-- flag 内容 -->
` + "```" + `

## 参考资料

<!-- 记录参考的文章、工具等 -->
`

const BuiltinSherlockTemplate = `---
id: {{id}}
title: {{title}}
name: {{name}}
type: Sherlock
categoryId: {{categoryId}}
categoryName: {{categoryName}}
difficulty: {{difficulty}}
difficultyText: {{difficultyText}}
rating: {{rating}}
score: {{score}}
scoreStar: {{scoreStar}}
stars: {{stars}}
ratingCount: {{ratingCount}}
imageUrl: {{imageUrl}}
avatar: {{avatar}}
currentDate: {{currentDate}}
currentTime: {{currentTime}}
releaseAt: {{releaseAt}}
releaseDate: {{releaseDate}}
state: {{state}}
retired: {{retired}}
isOwned: {{isOwned}}
isTodo: {{isTodo}}
solves: {{solves}}
userOwnsCount: {{userOwnsCount}}
progress: {{progress}}
authUserHasReviewed: {{authUserHasReviewed}}
userCanReview: {{userCanReview}}
writeupVisible: {{writeupVisible}}
showGoVip: {{showGoVip}}
favorite: {{favorite}}
pinned: {{pinned}}
playMethods: {{playMethods}}
retires: {{retires}}
tags: {{tags}}
url: {{url}}
---

![300]({{imageUrl}})

# {{name}}

> HTB Sherlock - 数字取证与事件响应挑战

## 📋 基本信息

| 项目 | 内容 |
|------|------|
| **Sherlock ID** | {{id}} |
| **名称** | {{name}} |
| **类型** | {{type}} |
| **分类ID** | {{categoryId}} |
| **分类名称** | {{categoryName}} |
| **难度** | {{difficultyText}} |
| **评分** | {{score}} / 5.0 {{scoreStar}} |
| **发布时间** | {{releaseAt}} |
| **状态** | {{state}} |
| **是否退役** | {{retired}} |
| **HTB URL** | {{url}} |

## 📊 统计数据

| 项目 | 数值 |
|------|------|
| **解题数** | {{solves}} |
| **用户拥有数** | {{userOwnsCount}} |
| **评分** | {{rating}} |
| **评分人数** | {{ratingCount}} |
| **星级** | {{stars}} 星 |

## 👤 个人状态

| 项目 | 状态 |
|------|------|
| **是否完成** | {{isOwned}} |
| **是否待办** | {{isTodo}} |
| **进度** | {{progress}}% |
| **是否收藏** | {{favorite}} |
| **是否置顶** | {{pinned}} |
| **已评价** | {{authUserHasReviewed}} |
| **可评价** | {{userCanReview}} |
| **Writeup可见** | {{writeupVisible}} |

## 🎮 游戏信息

| 项目 | 内容 |
|------|------|
| **游戏方式** | {{playMethods}} |
| **显示VIP引导** | {{showGoVip}} |

## 🏷️ 标签

{{tags}}

## 📝 场景描述

{{description}}

## ⚙️ 其他信息

| 项目 | 值 |
|------|-----|
| **生成日期** | {{currentDate}} |
| **生成时间** | {{currentTime}} |
| **退役信息** | {{retires}} |
`
