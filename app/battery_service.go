// Package app orchestrates dataset loading, test execution, and persistence.
package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"schoolstat/domain/battery"
	"schoolstat/domain/core"
	"schoolstat/domain/hypotest"
	"schoolstat/domain/table"
	"schoolstat/internal"
	"schoolstat/ports"
)

// BatteryService runs the full test battery over a student-record table
type BatteryService struct {
	engine *hypotest.Engine
	store  ports.ResultStorePort
	log    *internal.Logger
}

// NewBatteryService creates a battery service. The store may be nil; reports
// are then returned to the caller without being persisted.
func NewBatteryService(engine *hypotest.Engine, store ports.ResultStorePort, log *internal.Logger) *BatteryService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &BatteryService{engine: engine, store: store, log: log}
}

// outcome is the result slot for one battery task. Exactly one of result and
// skip is set on success; a nil pair means the task did not apply.
type outcome struct {
	result *hypotest.TestResult
	skip   *battery.SkippedTest
}

// RunBattery executes every applicable test over the table and assembles a
// report. Tests whose preconditions fail are recorded as skipped rather than
// aborting the run; only dataset-level failures return an error.
func (s *BatteryService) RunBattery(ctx context.Context, tbl *table.Table, dataset string, plan battery.Plan) (*battery.Report, error) {
	scores, err := tbl.NumericColumn(plan.ScoreColumn)
	if err != nil {
		return nil, fmt.Errorf("score column %q: %w", plan.ScoreColumn, err)
	}

	groups, err := tbl.GroupValues(plan.GroupColumn)
	if err != nil {
		return nil, fmt.Errorf("group column %q: %w", plan.GroupColumn, err)
	}
	byGroup, err := tbl.SplitNumericBy(plan.ScoreColumn, plan.GroupColumn)
	if err != nil {
		return nil, fmt.Errorf("splitting %q by %q: %w", plan.ScoreColumn, plan.GroupColumn, err)
	}

	var groupA, groupB hypotest.Sample
	twoGroups := len(groups) >= 2
	if twoGroups {
		groupA = byGroup[groups[0]]
		groupB = byGroup[groups[1]]
	}

	var before, after hypotest.Sample
	paired := plan.BeforeColumn != "" && plan.AfterColumn != ""
	if paired {
		if before, err = tbl.NumericColumn(plan.BeforeColumn); err != nil {
			return nil, fmt.Errorf("before column %q: %w", plan.BeforeColumn, err)
		}
		if after, err = tbl.NumericColumn(plan.AfterColumn); err != nil {
			return nil, fmt.Errorf("after column %q: %w", plan.AfterColumn, err)
		}
	}

	tasks := s.buildTasks(scores, groupA, groupB, before, after, twoGroups, paired, plan)

	outcomes := make([]outcome, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := task.run()
			if err != nil {
				if core.IsInputError(err) {
					s.log.Warn("skipping %s: %v", task.test, err)
					outcomes[i] = outcome{skip: &battery.SkippedTest{Test: task.test, Reason: err.Error()}}
					return nil
				}
				return fmt.Errorf("%s: %w", task.test, err)
			}
			outcomes[i] = outcome{result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &battery.Report{
		ID:        core.ReportID(core.NewID()),
		Dataset:   dataset,
		Plan:      plan,
		Groups:    groups,
		CreatedAt: core.Now(),
	}
	for _, o := range outcomes {
		switch {
		case o.result != nil:
			report.Results = append(report.Results, *o.result)
		case o.skip != nil:
			report.Skipped = append(report.Skipped, *o.skip)
		}
	}

	if s.store != nil {
		if err := s.store.SaveReport(ctx, report); err != nil {
			return nil, fmt.Errorf("saving report: %w", err)
		}
	}

	s.log.Info("battery complete: %d results, %d skipped", len(report.Results), len(report.Skipped))
	return report, nil
}

type batteryTask struct {
	test hypotest.TestType
	run  func() (*hypotest.TestResult, error)
}

func (s *BatteryService) buildTasks(scores, groupA, groupB, before, after hypotest.Sample, twoGroups, paired bool, plan battery.Plan) []batteryTask {
	e := s.engine
	alpha := plan.Alpha

	tasks := []batteryTask{
		{hypotest.TestOneSampleT, func() (*hypotest.TestResult, error) {
			return e.OneSampleT(scores, hypotest.OneSampleTParams{HypothesizedMean: plan.HypothesizedMean, Alpha: alpha})
		}},
	}

	if plan.PopulationStdDev > 0 {
		tasks = append(tasks, batteryTask{hypotest.TestOneSampleZ, func() (*hypotest.TestResult, error) {
			return e.OneSampleZ(scores, hypotest.OneSampleZParams{
				HypothesizedMean: plan.HypothesizedMean,
				PopulationStdDev: plan.PopulationStdDev,
				Alpha:            alpha,
			})
		}})
	}

	if twoGroups {
		tasks = append(tasks,
			batteryTask{hypotest.TestTwoSampleT, func() (*hypotest.TestResult, error) {
				return e.TwoSampleT(groupA, groupB, hypotest.TwoSampleTParams{EqualVariance: plan.EqualVariance, Alpha: alpha})
			}},
			batteryTask{hypotest.TestVarianceRatio, func() (*hypotest.TestResult, error) {
				return e.VarianceRatio(groupA, groupB, hypotest.FTestParams{Alpha: alpha})
			}},
			batteryTask{hypotest.TestLevene, func() (*hypotest.TestResult, error) {
				return e.Levene(groupA, groupB, alpha)
			}},
			batteryTask{hypotest.TestTwoSampleZ, func() (*hypotest.TestResult, error) {
				sigmaA, sigmaB := plan.PopulationStdDevA, plan.PopulationStdDevB
				if sigmaA <= 0 || sigmaB <= 0 {
					// Large-sample convention: fall back to the sample
					// standard deviations.
					var err error
					if sigmaA, err = hypotest.StdDev(groupA); err != nil {
						return nil, err
					}
					if sigmaB, err = hypotest.StdDev(groupB); err != nil {
						return nil, err
					}
				}
				return e.TwoSampleZ(groupA, groupB, hypotest.TwoSampleZParams{
					PopulationStdDevA: sigmaA,
					PopulationStdDevB: sigmaB,
					Alpha:             alpha,
				})
			}},
		)
	}

	if paired {
		tasks = append(tasks,
			batteryTask{hypotest.TestPairedT, func() (*hypotest.TestResult, error) {
				return e.PairedT(before, after, alpha)
			}},
			batteryTask{hypotest.TestPairedZ, func() (*hypotest.TestResult, error) {
				return e.PairedZ(before, after, alpha)
			}},
		)
	}

	return tasks
}
