package equipment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

const equipmentColumns = `
	e.equipment_id, e.equipment_name, e.room_id, r.room_name, e.status,
	to_char(e.last_maintenance, 'YYYY-MM-DD') AS last_maintenance,
	to_char(e.next_maintenance, 'YYYY-MM-DD') AS next_maintenance,
	e.maintenance_notes
`

func (r *repository) GetByID(ctx context.Context, id int) (*Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment e
		LEFT JOIN rooms r ON e.room_id = r.room_id
		WHERE e.equipment_id = $1
	`

	var e Equipment
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) LogIssue(ctx context.Context, id int, status, noteLine string) (bool, error) {
	query := `
		UPDATE equipment
		SET status = $1,
			maintenance_notes = COALESCE(maintenance_notes || E'\n', '') || $2
		WHERE equipment_id = $3
	`

	res, err := r.db.ExecContext(ctx, query, status, noteLine, id)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *repository) UpdateMaintenance(ctx context.Context, id int, lastMaintenance, nextMaintenance *string, status string) (bool, error) {
	var sets []string
	var params []interface{}

	if lastMaintenance != nil {
		params = append(params, *lastMaintenance)
		sets = append(sets, fmt.Sprintf("last_maintenance = $%d", len(params)))
	}
	if nextMaintenance != nil {
		params = append(params, *nextMaintenance)
		sets = append(sets, fmt.Sprintf("next_maintenance = $%d", len(params)))
	}
	params = append(params, status)
	sets = append(sets, fmt.Sprintf("status = $%d", len(params)))

	params = append(params, id)
	query := fmt.Sprintf("UPDATE equipment SET %s WHERE equipment_id = $%d", strings.Join(sets, ", "), len(params))

	res, err := r.db.ExecContext(ctx, query, params...)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *repository) List(ctx context.Context, roomID *int, status *string) ([]Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment e
		LEFT JOIN rooms r ON e.room_id = r.room_id
		WHERE ($1::int IS NULL OR e.room_id = $1)
		AND ($2::varchar IS NULL OR e.status = $2)
		ORDER BY e.status, e.equipment_name
	`

	var items []Equipment
	if err := r.db.SelectContext(ctx, &items, query, roomID, status); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) ListNeedingMaintenance(ctx context.Context) ([]Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment e
		LEFT JOIN rooms r ON e.room_id = r.room_id
		WHERE e.status IN ('Maintenance', 'Out of Order')
		OR (e.next_maintenance IS NOT NULL AND e.next_maintenance <= CURRENT_DATE + INTERVAL '30 days')
		ORDER BY
			CASE e.status
				WHEN 'Out of Order' THEN 1
				WHEN 'Maintenance' THEN 2
				ELSE 3
			END,
			e.next_maintenance
	`

	var items []Equipment
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}

	return items, nil
}
