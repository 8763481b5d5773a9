package quadtree

import (
	"context"

	"github.com/golang/geo/r2"

	"github.com/spatialkit/spatial/utils"
)

// QueryRanges runs one range query per given box against the tree,
// parallelizing the queries over worker groups. Results are positionally
// matched to rngs. The tree must not be mutated while the queries run unless
// it is a SyncQuadtree.
func QueryRanges(ctx context.Context, tree QuadTree, rngs []Box) ([][]r2.Point, error) {
	results := make([][]r2.Point, len(rngs))
	err := utils.GroupWorkParallel(
		ctx,
		len(rngs),
		func(numGroups int) {},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				results[workNum] = tree.QueryRange(rngs[workNum])
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return results, nil
}
