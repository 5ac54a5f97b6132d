package catalog

const table = `"{{.Database}}"."{{.Table}}"`

type source struct {
	name        string
	description string
	analytic    bool
	text        string
}

var sources = []source{
	{
		name:        "select-all",
		description: "all records ingested into the table so far",
		text:        `SELECT * FROM ` + table,
	},
	{
		name:        "select-all-limit",
		description: "all records limited by Limit, usually delivered in many pages",
		text:        `SELECT * FROM ` + table + ` LIMIT {{.Limit}}`,
	},
	{
		name:        "cpu-percentiles",
		description: "average, p90, p95 and p99 CPU utilization of the host over the past 2 hours",
		analytic:    true,
		text: `
SELECT region, az, hostname, BIN(time, 15s) AS binned_timestamp,
    ROUND(AVG(measure_value::double), 2) AS avg_cpu_utilization,
    ROUND(APPROX_PERCENTILE(measure_value::double, 0.9), 2) AS p90_cpu_utilization,
    ROUND(APPROX_PERCENTILE(measure_value::double, 0.95), 2) AS p95_cpu_utilization,
    ROUND(APPROX_PERCENTILE(measure_value::double, 0.99), 2) AS p99_cpu_utilization
FROM ` + table + `
WHERE measure_name = 'cpu_utilization'
    AND hostname = '{{.Hostname}}'
    AND time > ago(2h)
GROUP BY region, hostname, az, BIN(time, 15s)
ORDER BY binned_timestamp ASC`,
	},
	{
		name:        "cpu-above-fleet",
		description: "hosts with CPU utilization 10% or more above the fleet average over the past 2 hours",
		analytic:    true,
		text: `
WITH avg_fleet_utilization AS (
    SELECT COUNT(DISTINCT hostname) AS total_host_count, AVG(measure_value::double) AS fleet_avg_cpu_utilization
    FROM ` + table + `
    WHERE measure_name = 'cpu_utilization'
        AND time > ago(2h)
), avg_per_host_cpu AS (
    SELECT region, az, hostname, AVG(measure_value::double) AS avg_cpu_utilization
    FROM ` + table + `
    WHERE measure_name = 'cpu_utilization'
        AND time > ago(2h)
    GROUP BY region, az, hostname
)
SELECT region, az, hostname, avg_cpu_utilization, fleet_avg_cpu_utilization
FROM avg_fleet_utilization, avg_per_host_cpu
WHERE avg_cpu_utilization > 1.1 * fleet_avg_cpu_utilization
ORDER BY avg_cpu_utilization DESC`,
	},
	{
		name:        "cpu-binned",
		description: "average CPU utilization of the host binned at 30 seconds over the past 2 hours",
		analytic:    true,
		text: `
SELECT BIN(time, 30s) AS binned_timestamp, ROUND(AVG(measure_value::double), 2) AS avg_cpu_utilization, hostname
FROM ` + table + `
WHERE measure_name = 'cpu_utilization'
    AND hostname = '{{.Hostname}}'
    AND time > ago(2h)
GROUP BY hostname, BIN(time, 30s)
ORDER BY binned_timestamp ASC`,
	},
	interpolated("cpu-interpolate-linear", "linear interpolation",
		`INTERPOLATE_LINEAR(CREATE_TIME_SERIES(binned_timestamp, avg_cpu_utilization),
            SEQUENCE(min(binned_timestamp), max(binned_timestamp), 15s))`),
	interpolated("cpu-interpolate-locf", "last observation carried forward",
		`INTERPOLATE_LOCF(CREATE_TIME_SERIES(binned_timestamp, avg_cpu_utilization),
            SEQUENCE(min(binned_timestamp), max(binned_timestamp), 15s))`),
	interpolated("cpu-interpolate-fill", "a constant value",
		`INTERPOLATE_FILL(CREATE_TIME_SERIES(binned_timestamp, avg_cpu_utilization),
            SEQUENCE(min(binned_timestamp), max(binned_timestamp), 15s), 10.0)`),
	interpolated("cpu-interpolate-spline", "cubic spline interpolation",
		`INTERPOLATE_SPLINE_CUBIC(CREATE_TIME_SERIES(binned_timestamp, avg_cpu_utilization),
            SEQUENCE(min(binned_timestamp), max(binned_timestamp), 15s))`),
	{
		name:        "fleet-interpolate-locf",
		description: "average CPU utilization of every host over the past 2 hours with gaps filled by the last observation",
		analytic:    true,
		text: `
WITH per_host_min_max_timestamp AS (
    SELECT hostname, min(time) as min_timestamp, max(time) as max_timestamp
    FROM ` + table + `
    WHERE measure_name = 'cpu_utilization'
        AND time > ago(2h)
    GROUP BY hostname
), interpolated_timeseries AS (
    SELECT m.hostname,
        INTERPOLATE_LOCF(
            CREATE_TIME_SERIES(time, measure_value::double),
            SEQUENCE(MIN(ph.min_timestamp), MAX(ph.max_timestamp), 1s)) as interpolated_avg_cpu_utilization
    FROM ` + table + ` m
        INNER JOIN per_host_min_max_timestamp ph ON m.hostname = ph.hostname
    WHERE measure_name = 'cpu_utilization'
        AND time > ago(2h)
    GROUP BY m.hostname
)
SELECT hostname, AVG(cpu_utilization) AS avg_cpu_utilization
FROM interpolated_timeseries
CROSS JOIN UNNEST(interpolated_avg_cpu_utilization) AS t (time, cpu_utilization)
GROUP BY hostname
ORDER BY avg_cpu_utilization DESC`,
	},
	timeSeriesView("cpu-above-threshold",
		"share of measurements of the host with CPU utilization above 70% over the past 2 hours", false, `
SELECT FILTER(cpu_utilization, x -> x.value > 70.0) AS cpu_above_threshold,
    REDUCE(FILTER(cpu_utilization, x -> x.value > 70.0), 0, (s, x) -> s + 1, s -> s) AS count_cpu_above_threshold,
    ROUND(REDUCE(cpu_utilization, CAST(ROW(0, 0) AS ROW(count_high BIGINT, count_total BIGINT)),
        (s, x) -> CAST(ROW(s.count_high + IF(x.value > 70.0, 1, 0), s.count_total + 1) AS ROW(count_high BIGINT, count_total BIGINT)),
        s -> IF(s.count_total = 0, NULL, CAST(s.count_high AS DOUBLE) / s.count_total)), 4) AS fraction_cpu_above_threshold
FROM time_series_view`),
	timeSeriesView("cpu-below-threshold",
		"measurements of the host with CPU utilization below 75% over the past 2 hours", true, `
SELECT FILTER(cpu_utilization, x -> x.value < 75 AND x.time > oldest_time + 1m)
FROM time_series_view`),
	timeSeriesView("cpu-count",
		"number of interpolated measurements of the host over the past 2 hours", false, `
SELECT REDUCE(cpu_utilization, DOUBLE '0.0', (s, x) -> s + 1, s -> s) AS count_cpu
FROM time_series_view`),
	timeSeriesView("cpu-average",
		"average CPU utilization of the host over the past 2 hours with linear interpolation", false, `
SELECT REDUCE(cpu_utilization,
    CAST(ROW(0.0, 0) AS ROW(sum DOUBLE, count INTEGER)),
    (s, x) -> CAST(ROW(x.value + s.sum, s.count + 1) AS ROW(sum DOUBLE, count INTEGER)),
    s -> IF(s.count = 0, NULL, s.sum / s.count)) AS avg_cpu
FROM time_series_view`),
}

// interpolated averages the host CPU at 30 second bins and fills the gaps
// with fill.
func interpolated(name, method, fill string) source {
	return source{
		name:        name,
		description: "average CPU utilization of the host binned at 30 seconds over the past 2 hours, gaps filled by " + method,
		analytic:    true,
		text: `
WITH binned_timeseries AS (
    SELECT hostname, BIN(time, 30s) AS binned_timestamp, ROUND(AVG(measure_value::double), 2) AS avg_cpu_utilization
    FROM ` + table + `
    WHERE measure_name = 'cpu_utilization'
        AND hostname = '{{.Hostname}}'
        AND time > ago(2h)
    GROUP BY hostname, BIN(time, 30s)
), interpolated_timeseries AS (
    SELECT hostname, ` + fill + ` AS interpolated_avg_cpu_utilization
    FROM binned_timeseries
    GROUP BY hostname
)
SELECT time, ROUND(value, 2) AS interpolated_cpu
FROM interpolated_timeseries
CROSS JOIN UNNEST(interpolated_avg_cpu_utilization)`,
	}
}

// timeSeriesView builds the interpolated time series of the host CPU at
// 10 second steps and runs selection over it.
func timeSeriesView(name, description string, withOldestTime bool, selection string) source {
	oldestTime := ""
	if withOldestTime {
		oldestTime = "min(time) AS oldest_time, "
	}

	return source{
		name:        name,
		description: description,
		analytic:    true,
		text: `
WITH time_series_view AS (
    SELECT ` + oldestTime + `INTERPOLATE_LINEAR(
        CREATE_TIME_SERIES(time, ROUND(measure_value::double, 2)),
        SEQUENCE(min(time), max(time), 10s)) AS cpu_utilization
    FROM ` + table + `
    WHERE hostname = '{{.Hostname}}'
        AND measure_name = 'cpu_utilization'
        AND time > ago(2h)
    GROUP BY hostname
)` + selection,
	}
}
