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
	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// APIDefinitionVersionQuery is the builder for querying APIDefinitionVersion entities.
type APIDefinitionVersionQuery struct {
	config
	ctx            *QueryContext
	order          []apidefinitionversion.OrderOption
	inters         []Interceptor
	predicates     []predicate.APIDefinitionVersion
	withDefinition *APIDefinitionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the APIDefinitionVersionQuery builder.
func (_q *APIDefinitionVersionQuery) Where(ps ...predicate.APIDefinitionVersion) *APIDefinitionVersionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *APIDefinitionVersionQuery) Limit(limit int) *APIDefinitionVersionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *APIDefinitionVersionQuery) Offset(offset int) *APIDefinitionVersionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *APIDefinitionVersionQuery) Unique(unique bool) *APIDefinitionVersionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *APIDefinitionVersionQuery) Order(o ...apidefinitionversion.OrderOption) *APIDefinitionVersionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDefinition chains the current query on the "definition" edge.
func (_q *APIDefinitionVersionQuery) QueryDefinition() *APIDefinitionQuery {
	query := (&APIDefinitionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(apidefinitionversion.Table, apidefinitionversion.FieldID, selector),
			sqlgraph.To(apidefinition.Table, apidefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, apidefinitionversion.DefinitionTable, apidefinitionversion.DefinitionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first APIDefinitionVersion entity from the query.
// Returns a *NotFoundError when no APIDefinitionVersion was found.
func (_q *APIDefinitionVersionQuery) First(ctx context.Context) (*APIDefinitionVersion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{apidefinitionversion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *APIDefinitionVersionQuery) FirstX(ctx context.Context) *APIDefinitionVersion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first APIDefinitionVersion ID from the query.
// Returns a *NotFoundError when no APIDefinitionVersion ID was found.
func (_q *APIDefinitionVersionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{apidefinitionversion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *APIDefinitionVersionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single APIDefinitionVersion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one APIDefinitionVersion entity is found.
// Returns a *NotFoundError when no APIDefinitionVersion entities are found.
func (_q *APIDefinitionVersionQuery) Only(ctx context.Context) (*APIDefinitionVersion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{apidefinitionversion.Label}
	default:
		return nil, &NotSingularError{apidefinitionversion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *APIDefinitionVersionQuery) OnlyX(ctx context.Context) *APIDefinitionVersion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only APIDefinitionVersion ID in the query.
// Returns a *NotSingularError when more than one APIDefinitionVersion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *APIDefinitionVersionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{apidefinitionversion.Label}
	default:
		err = &NotSingularError{apidefinitionversion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *APIDefinitionVersionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of APIDefinitionVersions.
func (_q *APIDefinitionVersionQuery) All(ctx context.Context) ([]*APIDefinitionVersion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*APIDefinitionVersion, *APIDefinitionVersionQuery]()
	return withInterceptors[[]*APIDefinitionVersion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *APIDefinitionVersionQuery) AllX(ctx context.Context) []*APIDefinitionVersion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of APIDefinitionVersion IDs.
func (_q *APIDefinitionVersionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(apidefinitionversion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *APIDefinitionVersionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *APIDefinitionVersionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*APIDefinitionVersionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *APIDefinitionVersionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *APIDefinitionVersionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *APIDefinitionVersionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the APIDefinitionVersionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *APIDefinitionVersionQuery) Clone() *APIDefinitionVersionQuery {
	if _q == nil {
		return nil
	}
	return &APIDefinitionVersionQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]apidefinitionversion.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.APIDefinitionVersion{}, _q.predicates...),
		withDefinition: _q.withDefinition.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDefinition tells the query-builder to eager-load the nodes that are connected to
// the "definition" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *APIDefinitionVersionQuery) WithDefinition(opts ...func(*APIDefinitionQuery)) *APIDefinitionVersionQuery {
	query := (&APIDefinitionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDefinition = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		APIDefinitionID string `json:"api_definition_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.APIDefinitionVersion.Query().
//		GroupBy(apidefinitionversion.FieldAPIDefinitionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *APIDefinitionVersionQuery) GroupBy(field string, fields ...string) *APIDefinitionVersionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &APIDefinitionVersionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = apidefinitionversion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		APIDefinitionID string `json:"api_definition_id,omitempty"`
//	}
//
//	client.APIDefinitionVersion.Query().
//		Select(apidefinitionversion.FieldAPIDefinitionID).
//		Scan(ctx, &v)
func (_q *APIDefinitionVersionQuery) Select(fields ...string) *APIDefinitionVersionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &APIDefinitionVersionSelect{APIDefinitionVersionQuery: _q}
	sbuild.label = apidefinitionversion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a APIDefinitionVersionSelect configured with the given aggregations.
func (_q *APIDefinitionVersionQuery) Aggregate(fns ...AggregateFunc) *APIDefinitionVersionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *APIDefinitionVersionQuery) prepareQuery(ctx context.Context) error {
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
		if !apidefinitionversion.ValidColumn(f) {
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

func (_q *APIDefinitionVersionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*APIDefinitionVersion, error) {
	var (
		nodes       = []*APIDefinitionVersion{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withDefinition != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*APIDefinitionVersion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &APIDefinitionVersion{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
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
	if query := _q.withDefinition; query != nil {
		if err := _q.loadDefinition(ctx, query, nodes, nil,
			func(n *APIDefinitionVersion, e *APIDefinition) { n.Edges.Definition = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *APIDefinitionVersionQuery) loadDefinition(ctx context.Context, query *APIDefinitionQuery, nodes []*APIDefinitionVersion, init func(*APIDefinitionVersion), assign func(*APIDefinitionVersion, *APIDefinition)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*APIDefinitionVersion)
	for i := range nodes {
		fk := nodes[i].APIDefinitionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(apidefinition.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "api_definition_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *APIDefinitionVersionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *APIDefinitionVersionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(apidefinitionversion.Table, apidefinitionversion.Columns, sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apidefinitionversion.FieldID)
		for i := range fields {
			if fields[i] != apidefinitionversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDefinition != nil {
			_spec.Node.AddColumnOnce(apidefinitionversion.FieldAPIDefinitionID)
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

func (_q *APIDefinitionVersionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(apidefinitionversion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = apidefinitionversion.Columns
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

// APIDefinitionVersionGroupBy is the group-by builder for APIDefinitionVersion entities.
type APIDefinitionVersionGroupBy struct {
	selector
	build *APIDefinitionVersionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *APIDefinitionVersionGroupBy) Aggregate(fns ...AggregateFunc) *APIDefinitionVersionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *APIDefinitionVersionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*APIDefinitionVersionQuery, *APIDefinitionVersionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *APIDefinitionVersionGroupBy) sqlScan(ctx context.Context, root *APIDefinitionVersionQuery, v any) error {
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

// APIDefinitionVersionSelect is the builder for selecting fields of APIDefinitionVersion entities.
type APIDefinitionVersionSelect struct {
	*APIDefinitionVersionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *APIDefinitionVersionSelect) Aggregate(fns ...AggregateFunc) *APIDefinitionVersionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *APIDefinitionVersionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*APIDefinitionVersionQuery, *APIDefinitionVersionSelect](ctx, _s.APIDefinitionVersionQuery, _s, _s.inters, v)
}

func (_s *APIDefinitionVersionSelect) sqlScan(ctx context.Context, root *APIDefinitionVersionQuery, v any) error {
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
