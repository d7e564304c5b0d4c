package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"classroom-sync/biz/adaptor"
	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/util"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
)

type IStsService interface {
	ApplySignedUrl(ctx context.Context, req *studio.ApplySignedUrlReq) (*studio.ApplySignedUrlResp, error)
}

type StsService struct {
	Config *config.Config
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

type cosCredentials struct {
	SecretId     string `mapstructure:"secretId"`
	SecretKey    string `mapstructure:"secretKey"`
	SessionToken string `mapstructure:"sessionToken"`
}

// ApplySignedUrl 向cos申请加签url。
// 内联编码的附件和封面不允许直接入库，调用方先在这里拿到加签url完成上传，
// 再通过挂载附件接口提交外链。
func (s *StsService) ApplySignedUrl(ctx context.Context, req *studio.ApplySignedUrlReq) (*studio.ApplySignedUrlResp, error) {
	// 获取用户信息
	aUser := adaptor.ExtractUserMeta(ctx)
	if aUser.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	userId := aUser.GetUserId()
	client := util.GetHttpClient()
	data, err := client.GenCosSts(ctx, fmt.Sprintf("classrooms_%s/%s/*", s.Config.State, userId))
	if err != nil {
		return nil, err
	}
	if data["code"].(float64) != 0 {
		return nil, errors.New(data["message"].(string))
	}

	creds := new(cosCredentials)
	if dataMap, ok := data["data"].(map[string]any); ok {
		if err := mapstructure.Decode(dataMap, creds); err != nil {
			return nil, consts.ErrApplySignedUrl
		}
	} else {
		return nil, consts.ErrApplySignedUrl
	}

	prefix := req.GetPrefix()
	if prefix != "" {
		prefix += "/"
	}

	// 生成加签url
	data2, err := client.GenSignedUrl(ctx,
		creds.SecretId,
		creds.SecretKey,
		http.MethodPut,
		fmt.Sprintf("classrooms_%s/%s/%s%s%s", s.Config.State, userId, prefix, uuid.New().String(), req.GetSuffix()),
	)
	if err != nil {
		return nil, err
	}
	if data2["code"].(float64) != 0 {
		return nil, consts.ErrApplySignedUrl
	}
	data2 = data2["data"].(map[string]any)

	// 返回响应
	return &studio.ApplySignedUrlResp{
		Url:          data2["signedUrl"].(string),
		SessionToken: creds.SessionToken,
	}, nil
}
