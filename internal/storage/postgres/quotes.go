package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
)

const quoteColumns = `id, name, email, phone, service, message, status, assigned_to, assigned_at, created_at`

func scanQuote(row pgx.Row) (*model.QuoteRequest, error) {
	var q model.QuoteRequest
	err := row.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Service, &q.Message,
		&q.Status, &q.AssignedTo, &q.AssignedAt, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quoteRepository) Create(ctx context.Context, q *model.QuoteRequest) (*model.QuoteRequest, error) {
	const query = `INSERT INTO quote_requests (name, email, phone, service, message, status)
                   VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at`
	created := *q
	err := r.storage.pool.QueryRow(ctx, query, q.Name, q.Email, q.Phone, q.Service, q.Message, q.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quote_requests WHERE id=$1`
	q, err := scanQuote(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const repliesQuery = `SELECT id, quote_id, sender_id, sender_email, sender_type, message, replied_at
                          FROM quote_replies WHERE quote_id=$1 ORDER BY replied_at`
	rows, err := r.storage.pool.Query(ctx, repliesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reply model.QuoteReply
		if err := rows.Scan(&reply.ID, &reply.QuoteID, &reply.SenderID, &reply.SenderEmail,
			&reply.SenderType, &reply.Message, &reply.RepliedAt); err != nil {
			return nil, err
		}
		q.Replies = append(q.Replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *quoteRepository) ListAll(ctx context.Context) ([]model.QuoteRequest, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quote_requests ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *quoteRepository) ListByEmail(ctx context.Context, email string) ([]model.QuoteRequest, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quote_requests WHERE email=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, email)
}

func (r *quoteRepository) ListAssignedTo(ctx context.Context, adminID int64) ([]model.QuoteRequest, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quote_requests WHERE assigned_to=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, adminID)
}

func (r *quoteRepository) list(ctx context.Context, query string, args ...any) ([]model.QuoteRequest, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.QuoteRequest
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *quoteRepository) Assign(ctx context.Context, id, adminID int64) error {
	return r.exec(ctx, `UPDATE quote_requests SET assigned_to=$2, assigned_at=NOW() WHERE id=$1`, id, adminID)
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) error {
	return r.exec(ctx, `UPDATE quote_requests SET status=$2 WHERE id=$1`, id, status)
}

func (r *quoteRepository) AddReply(ctx context.Context, reply *model.QuoteReply, status model.QuoteStatus) (*model.QuoteReply, error) {
	const insertReply = `INSERT INTO quote_replies (quote_id, sender_id, sender_email, sender_type, message)
                         VALUES ($1,$2,$3,$4,$5) RETURNING id, replied_at`
	const updateStatus = `UPDATE quote_requests SET status=$2 WHERE id=$1`

	created := *reply
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateStatus, reply.QuoteID, status)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return tx.QueryRow(ctx, insertReply, reply.QuoteID, reply.SenderID, reply.SenderEmail,
			reply.SenderType, reply.Message).Scan(&created.ID, &created.RepliedAt)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *quoteRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM quote_requests WHERE id=$1`, id)
}

func (r *quoteRepository) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
