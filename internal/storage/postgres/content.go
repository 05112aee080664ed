package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// --- ProjectRepository implementation ---

const projectColumns = `id, title, category, description, technology_used, client_industry, icon, link, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Description, &p.TechnologyUsed,
		&p.ClientIndustry, &p.Icon, &p.Link, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	const insertProject = `INSERT INTO projects (title, category, description, technology_used, client_industry, icon, link)
                           VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at, updated_at`
	created := *p
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertProject, p.Title, p.Category, p.Description,
			p.TechnologyUsed, p.ClientIndustry, p.Icon, p.Link).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}
		return insertImages(ctx, tx, created.ID, p.Images)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func insertImages(ctx context.Context, tx pgx.Tx, projectID int64, images []model.ProjectImage) error {
	const insertImage = `INSERT INTO project_images (project_id, url, public_id) VALUES ($1,$2,$3)`
	for _, img := range images {
		if _, err := tx.Exec(ctx, insertImage, projectID, img.URL, img.PublicID); err != nil {
			return err
		}
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	p, err := scanProject(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachImages(ctx, []*model.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*model.Project, len(result))
	for i := range result {
		refs[i] = &result[i]
	}
	if err := r.attachImages(ctx, refs); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *projectRepository) attachImages(ctx context.Context, projects []*model.Project) error {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(projects))
	byID := make(map[int64]*model.Project, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	const query = `SELECT project_id, url, public_id FROM project_images WHERE project_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var projectID int64
		var img model.ProjectImage
		if err := rows.Scan(&projectID, &img.URL, &img.PublicID); err != nil {
			return err
		}
		if p, ok := byID[projectID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	const updateProject = `UPDATE projects SET title=$2, category=$3, description=$4, technology_used=$5,
                           client_industry=$6, icon=$7, link=$8, updated_at=NOW()
                           WHERE id=$1 RETURNING created_at, updated_at`
	updated := *p
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, updateProject, p.ID, p.Title, p.Category, p.Description,
			p.TechnologyUsed, p.ClientIndustry, p.Icon, p.Link).
			Scan(&updated.CreatedAt, &updated.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM project_images WHERE project_id=$1`, p.ID); err != nil {
			return err
		}
		return insertImages(ctx, tx, p.ID, p.Images)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SubscriberRepository implementation ---

func (r *subscriberRepository) Upsert(ctx context.Context, email, name, token string) (*model.Subscriber, bool, error) {
	// xmax = 0 distinguishes a fresh insert from a resubscribe.
	const query = `INSERT INTO subscribers (email, name, unsubscribe_token)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (email) DO UPDATE SET
                       subscribed = TRUE,
                       name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE subscribers.name END
                   RETURNING id, email, name, unsubscribe_token, subscribed, created_at, (xmax = 0)`
	var sub model.Subscriber
	var created bool
	err := r.storage.pool.QueryRow(ctx, query, email, name, token).
		Scan(&sub.ID, &sub.Email, &sub.Name, &sub.UnsubscribeToken, &sub.Subscribed, &sub.CreatedAt, &created)
	if err != nil {
		return nil, false, err
	}
	return &sub, created, nil
}

func (r *subscriberRepository) Unsubscribe(ctx context.Context, email string) error {
	return r.exec(ctx, `UPDATE subscribers SET subscribed=FALSE WHERE email=$1`, email)
}

func (r *subscriberRepository) UnsubscribeByToken(ctx context.Context, token string) error {
	return r.exec(ctx, `UPDATE subscribers SET subscribed=FALSE WHERE unsubscribe_token=$1`, token)
}

const subscriberColumns = `id, email, name, unsubscribe_token, subscribed, created_at`

func (r *subscriberRepository) ListActive(ctx context.Context) ([]model.Subscriber, error) {
	return r.list(ctx, `SELECT `+subscriberColumns+` FROM subscribers WHERE subscribed ORDER BY created_at`)
}

func (r *subscriberRepository) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	return r.list(ctx, `SELECT `+subscriberColumns+` FROM subscribers ORDER BY created_at`)
}

func (r *subscriberRepository) list(ctx context.Context, query string, args ...any) ([]model.Subscriber, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Subscriber
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Name, &sub.UnsubscribeToken, &sub.Subscribed, &sub.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *subscriberRepository) Update(ctx context.Context, id int64, name string, subscribed bool) error {
	return r.exec(ctx, `UPDATE subscribers SET name=$2, subscribed=$3 WHERE id=$1`, id, name, subscribed)
}

func (r *subscriberRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM subscribers WHERE id=$1`, id)
}

func (r *subscriberRepository) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- NewsletterRepository implementation ---

func (r *newsletterRepository) Create(ctx context.Context, subject, content string, status model.NewsletterStatus, sentAt *time.Time) (*model.Newsletter, error) {
	const query = `INSERT INTO newsletters (subject, content, status, sent_at)
                   VALUES ($1,$2,$3,$4) RETURNING id, created_at`
	n := model.Newsletter{Subject: subject, Content: content, Status: status, SentAt: sentAt}
	if err := r.storage.pool.QueryRow(ctx, query, subject, content, status, sentAt).Scan(&n.ID, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *newsletterRepository) GetByID(ctx context.Context, id int64) (*model.Newsletter, error) {
	const query = `SELECT id, subject, content, status, sent_at, created_at FROM newsletters WHERE id=$1`
	var n model.Newsletter
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&n.ID, &n.Subject, &n.Content, &n.Status, &n.SentAt, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *newsletterRepository) List(ctx context.Context) ([]model.Newsletter, error) {
	const query = `SELECT id, subject, content, status, sent_at, created_at FROM newsletters ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Newsletter
	for rows.Next() {
		var n model.Newsletter
		if err := rows.Scan(&n.ID, &n.Subject, &n.Content, &n.Status, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *newsletterRepository) Update(ctx context.Context, id int64, subject, content string) (*model.Newsletter, error) {
	const query = `UPDATE newsletters SET subject=$2, content=$3 WHERE id=$1
                   RETURNING id, subject, content, status, sent_at, created_at`
	var n model.Newsletter
	err := r.storage.pool.QueryRow(ctx, query, id, subject, content).
		Scan(&n.ID, &n.Subject, &n.Content, &n.Status, &n.SentAt, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *newsletterRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE newsletters SET status=$2, sent_at=$3 WHERE id=$1`,
		id, model.NewsletterStatusSent, sentAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM newsletters WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
