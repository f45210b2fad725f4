package template

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/util/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cast"
)

type IMySQLMapper interface {
	ListTemplates(ctx context.Context, req *show.ListTemplatesReq) ([]*show.AssignmentTemplate, int64, error)
}

type MySQLMapper struct {
	db *sql.DB
}

// Template 对应数据库中的 AssignmentTemplates 表
type Template struct {
	ID          int     `db:"id"`
	Subject     *string `db:"subject"`
	Grade       *int    `db:"grade"`
	Title       *string `db:"title"`
	Description *string `db:"description"`
}

func NewMySQLMapper(dsn string) (*MySQLMapper, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	log.Info("MySQL connection established successfully")
	return &MySQLMapper{db: db}, nil
}

func (m *MySQLMapper) Close() error {
	return m.db.Close()
}

// ListTemplates 获取作业模板列表
func (m *MySQLMapper) ListTemplates(ctx context.Context, req *show.ListTemplatesReq) ([]*show.AssignmentTemplate, int64, error) {
	var conditions []string
	var args []interface{}

	if req.Subject != nil && *req.Subject != "" {
		conditions = append(conditions, "subject = ?")
		args = append(args, *req.Subject)
	}

	if len(req.Grade) > 0 {
		placeholders := make([]string, len(req.Grade))
		for i, grade := range req.Grade {
			placeholders[i] = "?"
			args = append(args, grade)
		}
		conditions = append(conditions, fmt.Sprintf("grade IN (%s)", strings.Join(placeholders, ",")))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM AssignmentTemplates %s", whereClause)
	var total int64
	err := m.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		log.Error("Failed to count templates: %v", err)
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	page := int64(1)
	limit := int64(10)
	if req.PaginationOptions != nil {
		if req.PaginationOptions.Page != nil {
			page = *req.PaginationOptions.Page
		}
		if req.PaginationOptions.Limit != nil {
			limit = *req.PaginationOptions.Limit
		}
	}

	offset := (page - 1) * limit

	dataQuery := fmt.Sprintf(`
		SELECT id, subject, grade, title, description
		FROM AssignmentTemplates %s
		ORDER BY grade ASC, id ASC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, limit, offset)

	rows, err := m.db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		log.Error("Failed to query templates: %v", err)
		return nil, 0, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []*show.AssignmentTemplate
	for rows.Next() {
		var t Template
		err := rows.Scan(
			&t.ID,
			&t.Subject,
			&t.Grade,
			&t.Title,
			&t.Description,
		)
		if err != nil {
			log.Error("Failed to scan template row: %v", err)
			continue
		}

		templates = append(templates, &show.AssignmentTemplate{
			Id:          cast.ToString(t.ID),
			Subject:     safeString(t.Subject),
			Grade:       safeInt64(t.Grade),
			Title:       safeString(t.Title),
			Description: safeString(t.Description),
		})
	}

	if err = rows.Err(); err != nil {
		log.Error("Error iterating over rows: %v", err)
		return nil, 0, fmt.Errorf("error iterating over rows: %w", err)
	}

	return templates, total, nil
}

// safeString 安全地将 *string 转换为 string
func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// safeInt64 安全地将 *int 转换为 int64
func safeInt64(i *int) int64 {
	if i == nil {
		return 0
	}
	return int64(*i)
}
