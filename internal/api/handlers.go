package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"register",
		"dashboard",
		"credit_score",
		"civil_score",
		"apply_loan",
		"my_loans",
		"admin",
		"admin_user",
	}
	funcMap := newTemplateFuncMap()
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database), nil
}

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(value any, layout string) string {
			switch typed := value.(type) {
			case time.Time:
				if typed.IsZero() {
					return ""
				}
				return typed.Format(layout)
			case *time.Time:
				if typed == nil || typed.IsZero() {
					return ""
				}
				return typed.Format(layout)
			default:
				return ""
			}
		},
		"formatMoney": func(value float64) string {
			return fmt.Sprintf("%.2f", value)
		},
		"formatRate": func(value float64) string {
			return fmt.Sprintf("%.1f%%", value)
		},
		"formatScore": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"statusLabel": func(status string) string {
			status = strings.TrimSpace(status)
			if status == "" {
				return ""
			}
			return strings.ToUpper(status[:1]) + status[1:]
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			path := strings.TrimSpace(currentPath)
			if path == "" {
				return route == "/"
			}
			if route == "/" {
				return path == "/" || strings.HasPrefix(path, "/?")
			}
			return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
		},
	}
}
