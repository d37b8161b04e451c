// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Pavua/krab/ent/policyoverride"
	"github.com/Pavua/krab/ent/predicate"
)

// PolicyOverrideQuery is the builder for querying PolicyOverride entities.
type PolicyOverrideQuery struct {
	config
	ctx        *QueryContext
	order      []policyoverride.OrderOption
	inters     []Interceptor
	predicates []predicate.PolicyOverride
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PolicyOverrideQuery builder.
func (_q *PolicyOverrideQuery) Where(ps ...predicate.PolicyOverride) *PolicyOverrideQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PolicyOverrideQuery) Limit(limit int) *PolicyOverrideQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PolicyOverrideQuery) Offset(offset int) *PolicyOverrideQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PolicyOverrideQuery) Unique(unique bool) *PolicyOverrideQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PolicyOverrideQuery) Order(o ...policyoverride.OrderOption) *PolicyOverrideQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first PolicyOverride entity from the query.
// Returns a *NotFoundError when no PolicyOverride was found.
func (_q *PolicyOverrideQuery) First(ctx context.Context) (*PolicyOverride, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{policyoverride.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PolicyOverrideQuery) FirstX(ctx context.Context) *PolicyOverride {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PolicyOverride ID from the query.
// Returns a *NotFoundError when no PolicyOverride ID was found.
func (_q *PolicyOverrideQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{policyoverride.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PolicyOverrideQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PolicyOverride entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PolicyOverride entity is found.
// Returns a *NotFoundError when no PolicyOverride entities are found.
func (_q *PolicyOverrideQuery) Only(ctx context.Context) (*PolicyOverride, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{policyoverride.Label}
	default:
		return nil, &NotSingularError{policyoverride.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PolicyOverrideQuery) OnlyX(ctx context.Context) *PolicyOverride {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PolicyOverride ID in the query.
// Returns a *NotSingularError when more than one PolicyOverride ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PolicyOverrideQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{policyoverride.Label}
	default:
		err = &NotSingularError{policyoverride.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PolicyOverrideQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PolicyOverrides.
func (_q *PolicyOverrideQuery) All(ctx context.Context) ([]*PolicyOverride, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PolicyOverride, *PolicyOverrideQuery]()
	return withInterceptors[[]*PolicyOverride](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PolicyOverrideQuery) AllX(ctx context.Context) []*PolicyOverride {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PolicyOverride IDs.
func (_q *PolicyOverrideQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(policyoverride.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PolicyOverrideQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PolicyOverrideQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PolicyOverrideQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PolicyOverrideQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PolicyOverrideQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PolicyOverrideQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PolicyOverrideQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PolicyOverrideQuery) Clone() *PolicyOverrideQuery {
	if _q == nil {
		return nil
	}
	return &PolicyOverrideQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]policyoverride.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.PolicyOverride{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ChatID string `json:"chat_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PolicyOverride.Query().
//		GroupBy(policyoverride.FieldChatID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PolicyOverrideQuery) GroupBy(field string, fields ...string) *PolicyOverrideGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PolicyOverrideGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = policyoverride.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ChatID string `json:"chat_id,omitempty"`
//	}
//
//	client.PolicyOverride.Query().
//		Select(policyoverride.FieldChatID).
//		Scan(ctx, &v)
func (_q *PolicyOverrideQuery) Select(fields ...string) *PolicyOverrideSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PolicyOverrideSelect{PolicyOverrideQuery: _q}
	sbuild.label = policyoverride.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PolicyOverrideSelect configured with the given aggregations.
func (_q *PolicyOverrideQuery) Aggregate(fns ...AggregateFunc) *PolicyOverrideSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PolicyOverrideQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !policyoverride.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PolicyOverrideQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PolicyOverride, error) {
	var (
		nodes = []*PolicyOverride{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PolicyOverride).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PolicyOverride{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *PolicyOverrideQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PolicyOverrideQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(policyoverride.Table, policyoverride.Columns, sqlgraph.NewFieldSpec(policyoverride.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policyoverride.FieldID)
		for i := range fields {
			if fields[i] != policyoverride.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PolicyOverrideQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(policyoverride.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = policyoverride.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PolicyOverrideGroupBy is the group-by builder for PolicyOverride entities.
type PolicyOverrideGroupBy struct {
	selector
	build *PolicyOverrideQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PolicyOverrideGroupBy) Aggregate(fns ...AggregateFunc) *PolicyOverrideGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PolicyOverrideGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PolicyOverrideQuery, *PolicyOverrideGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PolicyOverrideGroupBy) sqlScan(ctx context.Context, root *PolicyOverrideQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PolicyOverrideSelect is the builder for selecting fields of PolicyOverride entities.
type PolicyOverrideSelect struct {
	*PolicyOverrideQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PolicyOverrideSelect) Aggregate(fns ...AggregateFunc) *PolicyOverrideSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PolicyOverrideSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PolicyOverrideQuery, *PolicyOverrideSelect](ctx, _s.PolicyOverrideQuery, _s, _s.inters, v)
}

func (_s *PolicyOverrideSelect) sqlScan(ctx context.Context, root *PolicyOverrideQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
