//go:build integration

package entledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgresCallFlow(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("toolgate"),
		tcpostgres.WithUsername("toolgate"),
		tcpostgres.WithPassword("toolgate"),
		tcpostgres.WithSQLDriver("pgx"),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	st, err := Open(ctx, fmt.Sprintf("postgres://%s", dsn))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	if _, err := st.AppendCall(ctx, "threadpg", okRecord("pc1", "agent-1", "get_system_health")); err != nil {
		t.Fatal(err)
	}
	if _, err := st.AppendCall(ctx, "threadpg", deniedRecord("pc2", "agent-1", "create_ticket")); err != nil {
		t.Fatal(err)
	}

	got, err := st.ListCalls(ctx, "threadpg", 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d want 2", len(got))
	}
	if got[0].Seq != 1 || got[1].Seq != 2 {
		t.Fatalf("seq order wrong: %+v", got)
	}
	if !got[1].Denied() {
		t.Fatalf("denial lost across round-trip: %+v", got[1])
	}

	// Postgres allows the read-then-insert transactions to interleave, so
	// concurrent writers collide on (context_id, seq); every append must
	// still land with a unique seq.
	const n = 10
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = st.AppendCall(ctx, "threadpg-conc", okRecord(fmt.Sprintf("pcc%d", i), "agent-1", "get_system_health"))
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	conc, err := st.ListCalls(ctx, "threadpg-conc", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(conc) != n {
		t.Fatalf("len=%d want %d", len(conc), n)
	}
	seen := map[int64]bool{}
	for _, c := range conc {
		if seen[c.Seq] {
			t.Fatalf("duplicate seq %d", c.Seq)
		}
		seen[c.Seq] = true
	}
}
