package service

import (
	"fmt"

	"github.com/google/uuid"

	"JejuTrip-App/internal/domain/model"
)

// RouteParser はノードIDとリンクIDが交互に並ぶinterleaved経路列を分解する
// 正常な列は node, link, node, link, ..., node とノードで終わる奇数長だが、
// 上流データの乱れで偶数長や不規則な列が来てもクラッシュしない
type RouteParser struct{}

// NewRouteParser は新しいRouteParserインスタンスを作成する
func NewRouteParser() *RouteParser {
	return &RouteParser{}
}

// SplitInterleaved はinterleaved列をノードID列とリンクID列に分離する
// 偶数インデックスがノード、奇数インデックスがリンク
func (p *RouteParser) SplitInterleaved(route []string) (nodeIDs, linkIDs []string) {
	nodeIDs = make([]string, 0, (len(route)+1)/2)
	linkIDs = make([]string, 0, len(route)/2)
	for i, id := range route {
		if i%2 == 0 {
			nodeIDs = append(nodeIDs, id)
		} else {
			linkIDs = append(linkIDs, id)
		}
	}
	return nodeIDs, linkIDs
}

// ToRouteData はinterleaved列から1日分のRouteDataを作る
func (p *RouteParser) ToRouteData(route []string, day int) *model.RouteData {
	nodeIDs, linkIDs := p.SplitInterleaved(route)
	return &model.RouteData{
		RouteID: fmt.Sprintf("route_%d_%s", day, uuid.New().String()),
		Day:     day,
		NodeIDs: nodeIDs,
		LinkIDs: linkIDs,
	}
}

// ToSegments はRouteDataを区間経路のリストに変換する
// 現状は全区間をカバーする1セグメントのみを返す。上流が区間境界を
// 提供するようになったら連続する2地点ごとに分割する
// 場所が2箇所未満の場合は空リストを返す
func (p *RouteParser) ToSegments(routeData *model.RouteData, placeCount int) []model.SegmentRoute {
	if routeData == nil || placeCount < 2 {
		return []model.SegmentRoute{}
	}
	return []model.SegmentRoute{
		{
			FromIndex: 0,
			ToIndex:   placeCount - 1,
			NodeIDs:   routeData.NodeIDs,
			LinkIDs:   routeData.LinkIDs,
		},
	}
}

// Reinterleave はノードID列とリンクID列を交互に並べてinterleaved列に戻す
// （経路データをそのままマップ層へ渡すときの逆変換）
func (p *RouteParser) Reinterleave(nodeIDs, linkIDs []string) []string {
	result := make([]string, 0, len(nodeIDs)+len(linkIDs))
	for i := 0; i < len(nodeIDs) || i < len(linkIDs); i++ {
		if i < len(nodeIDs) {
			result = append(result, nodeIDs[i])
		}
		if i < len(linkIDs) {
			result = append(result, linkIDs[i])
		}
	}
	return result
}
