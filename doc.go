// Package tsquery runs queries against a time-series query service and
// pages through their results.
//
// The service is Amazon Timestream for LiveAnalytics by default:
//
//	db, err := tsquery.Open(ctx, tsquery.WithRegion("us-east-1"))
//	if err != nil {
//		return err
//	}
//	q := query.New(`SELECT * FROM "db"."table" LIMIT 100`, query.WithPageSizeHint(50))
//	rows, err := db.Query().ReadAll(ctx, q)
//
// Long results are iterated page by page:
//
//	e, err := db.Query().Run(ctx, q)
//	if err != nil {
//		return err
//	}
//	for row, err := range db.Query().Rows(ctx, e) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(row)
//	}
//
// Any other service is plugged in with WithTransport.
package tsquery
