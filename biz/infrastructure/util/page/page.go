package util

import "assignment-hub/biz/application/dto/basic"

func ParsePageOpt(p *basic.PaginationOptions) (page int64, pageSize int64) {
	// 设置分页参数
	page = int64(1)
	pageSize = int64(10)

	if p != nil && p.Page != nil && p.Limit != nil {
		page = *p.Page
		pageSize = *p.Limit
	}
	return page, pageSize
}
